package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrListingNotFound      = errors.New("listing not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrAuctionClosed        = errors.New("auction is closed")
	ErrAuctionAlreadyClosed = errors.New("auction is already closed")
	ErrBidTooLow            = errors.New("bid amount is too low")
	ErrInvalidAmount        = errors.New("amount must be greater than zero with at most the allowed fractional digits")
	ErrSelfBid              = errors.New("seller cannot bid on their own listing")
	ErrForbidden            = errors.New("only the seller or an administrator can close this auction")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrInvalidTitle         = errors.New("title must be between 1 and 64 characters")
	ErrEmptyComment         = errors.New("comment cannot be empty")
)

// BidTooLowError is returned when a bid does not exceed the current price.
// errors.Is(err, ErrBidTooLow) holds for it.
type BidTooLowError struct {
	CurrentPrice decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid must be higher than the current price of %s", e.CurrentPrice.StringFixed(2))
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}
