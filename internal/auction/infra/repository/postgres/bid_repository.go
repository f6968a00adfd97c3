package postgres

import (
	"context"
	"errors"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BidRepository implements domain.BidRepository interface
type BidRepository struct {
	pool *pgxpool.Pool
}

// NewBidRepository creates new instance of BidRepository.
func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

func (r *BidRepository) GetBidsByListingID(ctx context.Context, listingID uuid.UUID) ([]*domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE listing_id = $1
        ORDER BY bid_time ASC
    `
	rows, err := r.pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]*domain.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}

// highestBid uses the (listing_id, amount DESC, bid_time ASC) index, nil when there are no bids.
func highestBid(ctx context.Context, q querier, listingID uuid.UUID) (*domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE listing_id = $1
        ORDER BY amount DESC, bid_time ASC
        LIMIT 1
    `
	bid, err := scanBid(q.QueryRow(ctx, query, listingID))
	if err != nil {
		//if there is any bid por this listing
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return bid, nil
}

// this method only inserts a new bid, it always runs inside the ledger transaction
func saveBid(ctx context.Context, q querier, bid *domain.Bid) error {
	query := `
        INSERT INTO bids (id, listing_id, bidder_id, amount, bid_time)
        VALUES ($1, $2, $3, $4::numeric, $5)
    `
	_, err := q.Exec(ctx, query,
		bid.ID,
		bid.ListingID,
		bid.BidderID,
		bid.Amount.String(),
		bid.BidTime,
	)
	return err
}
