package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
)

// WatchlistRepository implements domain.WatchlistRepository interface
type WatchlistRepository struct {
	pool *pgxpool.Pool
}

func NewWatchlistRepository(pool *pgxpool.Pool) *WatchlistRepository {
	return &WatchlistRepository{pool: pool}
}

// Add is idempotent.
func (r *WatchlistRepository) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	query := `
        INSERT INTO watchlist (user_id, listing_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, listing_id) DO NOTHING
    `
	_, err := r.pool.Exec(ctx, query, userID, listingID)
	return err
}

func (r *WatchlistRepository) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM watchlist WHERE user_id = $1 AND listing_id = $2`, userID, listingID)
	return err
}

func (r *WatchlistRepository) Contains(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM watchlist WHERE user_id = $1 AND listing_id = $2)`,
		userID, listingID,
	).Scan(&ok)
	return ok, err
}

// ListByUser returns the watched listings, most recently added first.
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ListingSummary, error) {
	query := `
        SELECT ` + summaryColumns + `
        FROM watchlist w
        JOIN listings l ON l.id = w.listing_id
        LEFT JOIN bids b ON b.listing_id = l.id
        WHERE w.user_id = $1
        GROUP BY l.id, w.added_at
        ORDER BY w.added_at DESC
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectSummaries(rows)
}
