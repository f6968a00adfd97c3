package domain

import (
	"context"

	"github.com/google/uuid"
)

// LedgerTx is the store as seen from inside one ledger transaction.
type LedgerTx interface {
	// GetListingForUpdate loads the listing and holds an exclusive lock on it
	// until the transaction ends.
	GetListingForUpdate(ctx context.Context, id uuid.UUID) (*Listing, error)
	// HighestBid returns the winning bid (max amount, earliest on ties) or nil.
	HighestBid(ctx context.Context, listingID uuid.UUID) (*Bid, error)
	SaveBid(ctx context.Context, bid *Bid) error
	SaveClosing(ctx context.Context, listing *Listing) error
}

// Ledger runs bid and close operations as one unit of work. If fn returns an
// error nothing written through tx is kept.
type Ledger interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*Listing, error)
	GetSummary(ctx context.Context, id uuid.UUID) (*ListingSummary, error)
	// ListActive returns active listings, newest first, optionally filtered by category.
	ListActive(ctx context.Context, categoryID *int64) ([]*ListingSummary, error)
}

type BidRepository interface {
	GetBidsByListingID(ctx context.Context, listingID uuid.UUID) ([]*Bid, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*Comment, error)
}

type WatchlistRepository interface {
	Add(ctx context.Context, userID, listingID uuid.UUID) error
	Remove(ctx context.Context, userID, listingID uuid.UUID) error
	Contains(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ListingSummary, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// EnsureExists inserts name if missing and reports whether it was created.
	EnsureExists(ctx context.Context, name string) (bool, error)
}
