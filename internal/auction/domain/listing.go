package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cristianortiz/auctionMarket/internal/shared/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

const maxTitleLength = 64

// Listing is an item offered for auction. Its current price is not stored,
// it is always derived from the bid history (see CurrentPrice).
type Listing struct {
	ID            uuid.UUID
	Title         string
	Description   string
	StartingPrice decimal.Decimal
	ImageURL      *string
	CategoryID    *int64
	SellerID      uuid.UUID
	Active        bool
	WinnerID      *uuid.UUID
	CreatedAt     time.Time
}

// ListingSummary is a listing together with the values derived from its bids.
type ListingSummary struct {
	Listing
	CurrentPrice decimal.Decimal
	BidCount     int
}

// NewListing validates the seller input and returns an active listing.
func NewListing(id, sellerID uuid.UUID, title, description string, startingPrice decimal.Decimal,
	categoryID *int64, imageURL *string, precision int32, createdAt time.Time) (*Listing, error) {

	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return nil, ErrInvalidTitle
	}
	if err := ValidateAmount(startingPrice, precision); err != nil {
		return nil, err
	}
	if imageURL != nil && strings.TrimSpace(*imageURL) == "" {
		imageURL = nil
	}

	return &Listing{
		ID:            id,
		Title:         title,
		Description:   strings.TrimSpace(description),
		StartingPrice: startingPrice,
		ImageURL:      imageURL,
		CategoryID:    categoryID,
		SellerID:      sellerID,
		Active:        true,
		CreatedAt:     createdAt,
	}, nil
}

// AcceptBid runs the bid preconditions against currentPrice and returns the new
// bid. The caller is responsible for holding the listing lock and persisting the bid.
func (l *Listing) AcceptBid(bidderID uuid.UUID, amount, currentPrice decimal.Decimal, precision int32, now time.Time) (*Bid, error) {
	if !l.Active {
		log.Warn("Bid rejected: auction closed",
			zap.String("listingID", l.ID.String()),
			zap.String("bidderID", bidderID.String()),
			AmountField("bidAmount", amount),
		)
		return nil, ErrAuctionClosed
	}

	if err := ValidateAmount(amount, precision); err != nil {
		log.Warn("Bid rejected: invalid amount",
			zap.String("listingID", l.ID.String()),
			zap.String("bidderID", bidderID.String()),
			AmountField("bidAmount", amount),
		)
		return nil, err
	}

	if bidderID == l.SellerID {
		log.Warn("Bid rejected: seller bidding on own listing",
			zap.String("listingID", l.ID.String()),
			zap.String("bidderID", bidderID.String()),
		)
		return nil, ErrSelfBid
	}

	if amount.LessThanOrEqual(currentPrice) {
		log.Warn("Bid rejected: amount too low",
			zap.String("listingID", l.ID.String()),
			zap.String("bidderID", bidderID.String()),
			AmountField("bidAmount", amount),
			zap.String("currentPrice", currentPrice.String()),
		)
		return nil, &BidTooLowError{CurrentPrice: currentPrice}
	}

	return NewBid(uuid.New(), l.ID, bidderID, amount, now), nil
}

// CanClose reports whether caller may close the auction.
func (l *Listing) CanClose(caller Caller) bool {
	return caller.IsAdmin || (caller.Authenticated() && caller.UserID == l.SellerID)
}

// Close ends an active auction, winning is the highest bid or nil when there are no bids.
// A closed listing is never re-evaluated.
func (l *Listing) Close(caller Caller, winning *Bid) error {
	if !l.CanClose(caller) {
		log.Warn("Attempted to close listing without permission",
			zap.String("listingID", l.ID.String()),
			zap.String("callerID", caller.UserID.String()),
		)
		return ErrForbidden
	}

	if !l.Active {
		log.Warn("Attempted to close listing that is already closed",
			zap.String("listingID", l.ID.String()),
		)
		return ErrAuctionAlreadyClosed
	}

	l.Active = false
	if winning != nil {
		winnerID := winning.BidderID
		l.WinnerID = &winnerID
	}

	fields := []zap.Field{zap.String("listingID", l.ID.String())}
	if winning != nil {
		fields = append(fields,
			zap.String("winnerID", winning.BidderID.String()),
			zap.String("finalPrice", winning.Amount.String()),
		)
	}
	log.Info("Auction closed", fields...)
	return nil
}
