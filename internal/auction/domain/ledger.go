package domain

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// MaxAmountIntegerDigits matches the NUMERIC(10,2) money columns.
	MaxAmountIntegerDigits = 8
	// amounts carrying more fractional digits than this are never inspected further
	maxAmountScale = 32
)

// CurrentPrice is the highest accepted bid or the starting price when there is none.
func CurrentPrice(l *Listing, highest *Bid) decimal.Decimal {
	if highest == nil {
		return l.StartingPrice
	}
	return highest.Amount
}

// WinningBid returns the bid with the maximum amount, the earliest one on ties.
// It returns nil for an empty history.
func WinningBid(bids []*Bid) *Bid {
	var winning *Bid
	for _, b := range bids {
		if winning == nil ||
			b.Amount.GreaterThan(winning.Amount) ||
			(b.Amount.Equal(winning.Amount) && b.BidTime.Before(winning.BidTime)) {
			winning = b
		}
	}
	return winning
}

// ValidateAmount checks that amount is positive, has at most MaxAmountIntegerDigits
// integer digits and at most precision fractional digits.
// Magnitude is checked from coefficient and exponent before any rescaling,
// so values like 1e50000000 are rejected without being expanded.
func ValidateAmount(amount decimal.Decimal, precision int32) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !amountInRange(amount) {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(precision)) {
		return ErrInvalidAmount
	}
	return nil
}

func amountInRange(amount decimal.Decimal) bool {
	exp := amount.Exponent()
	if exp < -maxAmountScale || exp > MaxAmountIntegerDigits {
		return false
	}
	return amount.NumDigits()+int(exp) <= MaxAmountIntegerDigits
}

// AmountField logs amount, or a placeholder when it is out of range and
// formatting it would be expensive.
func AmountField(key string, amount decimal.Decimal) zap.Field {
	if !amountInRange(amount) {
		return zap.String(key, "out of range")
	}
	return zap.String(key, amount.String())
}
