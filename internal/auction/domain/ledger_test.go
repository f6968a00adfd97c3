package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCurrentPrice(t *testing.T) {
	l := &Listing{StartingPrice: dec("10.00")}

	require.True(t, CurrentPrice(l, nil).Equal(dec("10.00")))
	require.True(t, CurrentPrice(l, &Bid{Amount: dec("15.00")}).Equal(dec("15.00")))
}

func TestWinningBid(t *testing.T) {
	now := time.Now()
	early := &Bid{ID: uuid.New(), Amount: dec("20"), BidTime: now}
	late := &Bid{ID: uuid.New(), Amount: dec("20.00"), BidTime: now.Add(time.Second)}
	low := &Bid{ID: uuid.New(), Amount: dec("5"), BidTime: now.Add(-time.Second)}

	tests := []struct {
		name string
		bids []*Bid
		want *Bid
	}{
		{"no bids", nil, nil},
		{"single bid", []*Bid{low}, low},
		{"highest amount wins", []*Bid{low, early}, early},
		{"earliest wins on tie", []*Bid{late, low, early}, early},
		{"first seen wins on identical time", []*Bid{early, {ID: uuid.New(), Amount: dec("20"), BidTime: now}}, early},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Same(t, tt.want, WinningBid(tt.bids))
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount    string
		precision int32
		wantErr   bool
	}{
		{"10", 2, false},
		{"10.5", 2, false},
		{"10.55", 2, false},
		{"10.550", 2, false},
		{"10.555", 2, true},
		{"0.01", 2, false},
		{"0", 2, true},
		{"-1", 2, true},
		{"10.5", 0, true},
		{"99999999.99", 2, false},
		{"100000000.00", 2, true},
		{"1e3", 2, false},
		{"1e30", 2, true},
		{"1e50000000", 2, true},
		{"1e-50", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := ValidateAmount(dec(tt.amount), tt.precision)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBidTooLowError(t *testing.T) {
	var err error = &BidTooLowError{CurrentPrice: dec("10")}

	require.ErrorIs(t, err, ErrBidTooLow)
	require.Equal(t, "bid must be higher than the current price of 10.00", err.Error())
}

func TestAmountField(t *testing.T) {
	require.Equal(t, "12.5", AmountField("amount", dec("12.50")).String)
	require.Equal(t, "out of range", AmountField("amount", dec("1e50000000")).String)
}
