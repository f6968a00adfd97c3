package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// bid represents individual bid on a listing, immutable once accepted
// is also an entity inside Listing agreggate (DDD concepts)
type Bid struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	BidderID  uuid.UUID //users id who makes the bid
	Amount    decimal.Decimal
	BidTime   time.Time
}

// NewBid creates a new Bid instance
func NewBid(id, listingID, bidderID uuid.UUID, amount decimal.Decimal, bidTime time.Time) *Bid {
	return &Bid{
		ID:        id,
		ListingID: listingID,
		BidderID:  bidderID,
		Amount:    amount,
		BidTime:   bidTime,
	}

}
