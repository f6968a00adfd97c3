package postgres

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// money columns are read as text so no precision is lost on the way to decimal.Decimal
const listingColumns = `l.id, l.title, l.description, l.starting_price::text, l.image_url, l.category_id,
        l.seller_id, l.active, l.winner_id, l.created_at`

const summaryColumns = listingColumns + `,
        COALESCE(MAX(b.amount), l.starting_price)::text AS current_price,
        COUNT(b.id) AS bid_count`

const bidColumns = `id, listing_id, bidder_id, amount::text, bid_time`

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid money value %q: %w", s, err)
	}
	return d, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	l := &domain.Listing{}
	var startingPrice string
	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Description,
		&startingPrice,
		&l.ImageURL,
		&l.CategoryID,
		&l.SellerID,
		&l.Active,
		&l.WinnerID,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if l.StartingPrice, err = parseMoney(startingPrice); err != nil {
		return nil, err
	}
	return l, nil
}

func scanSummary(row pgx.Row) (*domain.ListingSummary, error) {
	s := &domain.ListingSummary{}
	var startingPrice, currentPrice string
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&startingPrice,
		&s.ImageURL,
		&s.CategoryID,
		&s.SellerID,
		&s.Active,
		&s.WinnerID,
		&s.CreatedAt,
		&currentPrice,
		&s.BidCount,
	)
	if err != nil {
		return nil, err
	}
	if s.StartingPrice, err = parseMoney(startingPrice); err != nil {
		return nil, err
	}
	if s.CurrentPrice, err = parseMoney(currentPrice); err != nil {
		return nil, err
	}
	return s, nil
}

func collectSummaries(rows pgx.Rows) ([]*domain.ListingSummary, error) {
	defer rows.Close()

	summaries := make([]*domain.ListingSummary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func scanBid(row pgx.Row) (*domain.Bid, error) {
	bid := &domain.Bid{}
	var amount string
	err := row.Scan(
		&bid.ID,
		&bid.ListingID,
		&bid.BidderID,
		&amount,
		&bid.BidTime,
	)
	if err != nil {
		return nil, err
	}
	if bid.Amount, err = parseMoney(amount); err != nil {
		return nil, err
	}
	return bid, nil
}
