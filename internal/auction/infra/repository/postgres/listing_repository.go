package postgres

import (
	"context"
	"errors"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingRepository implements domain.ListingRepository interface
type ListingRepository struct {
	pool *pgxpool.Pool
}

// NewListingRepository creates a new instance of ListingRepository
func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

// Create inserts a new listing, created_at comes from the domain entity.
func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	query := `
        INSERT INTO listings (id, title, description, starting_price, image_url, category_id, seller_id, active, winner_id, created_at)
        VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.pool.Exec(ctx, query,
		listing.ID,
		listing.Title,
		listing.Description,
		listing.StartingPrice.String(),
		listing.ImageURL,
		listing.CategoryID,
		listing.SellerID,
		listing.Active,
		listing.WinnerID,
		listing.CreatedAt,
	)
	return err
}

func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return getListing(ctx, r.pool, id, false)
}

// GetSummary returns the listing with its current price derived from the bids table.
func (r *ListingRepository) GetSummary(ctx context.Context, id uuid.UUID) (*domain.ListingSummary, error) {
	query := `
        SELECT ` + summaryColumns + `
        FROM listings l
        LEFT JOIN bids b ON b.listing_id = l.id
        WHERE l.id = $1
        GROUP BY l.id
    `
	s, err := scanSummary(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListActive returns active listings, newest first.
func (r *ListingRepository) ListActive(ctx context.Context, categoryID *int64) ([]*domain.ListingSummary, error) {
	query := `
        SELECT ` + summaryColumns + `
        FROM listings l
        LEFT JOIN bids b ON b.listing_id = l.id
        WHERE l.active AND ($1::bigint IS NULL OR l.category_id = $1)
        GROUP BY l.id
        ORDER BY l.created_at DESC
    `
	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	return collectSummaries(rows)
}

func getListing(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*domain.Listing, error) {
	query := `
        SELECT ` + listingColumns + `
        FROM listings l
        WHERE l.id = $1
    `
	if forUpdate {
		query += " FOR UPDATE"
	}

	listing, err := scanListing(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound // Usar error del dominio
		}
		return nil, err
	}
	return listing, nil
}
