package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newActiveListing(seller uuid.UUID) *Listing {
	l, err := NewListing(uuid.New(), seller, "Vintage camera", "works", dec("10.00"), nil, nil, 2, time.Now())
	if err != nil {
		panic(err)
	}
	return l
}

func TestNewListing(t *testing.T) {
	seller := uuid.New()
	blank := "  "

	l, err := NewListing(uuid.New(), seller, "  Lamp ", " desc ", dec("1.50"), nil, &blank, 2, time.Now())
	require.NoError(t, err)
	require.Equal(t, "Lamp", l.Title)
	require.Equal(t, "desc", l.Description)
	require.True(t, l.Active)
	require.Nil(t, l.ImageURL)
	require.Nil(t, l.WinnerID)

	_, err = NewListing(uuid.New(), seller, "", "", dec("1"), nil, nil, 2, time.Now())
	require.ErrorIs(t, err, ErrInvalidTitle)

	_, err = NewListing(uuid.New(), seller, strings.Repeat("x", 65), "", dec("1"), nil, nil, 2, time.Now())
	require.ErrorIs(t, err, ErrInvalidTitle)

	_, err = NewListing(uuid.New(), seller, "Lamp", "", dec("0"), nil, nil, 2, time.Now())
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestListing_AcceptBid(t *testing.T) {
	seller := uuid.New()
	bidder := uuid.New()

	tests := []struct {
		name    string
		active  bool
		bidder  uuid.UUID
		amount  string
		current string
		wantErr error
	}{
		{"valid bid", true, bidder, "15.00", "10.00", nil},
		{"equal to current price", true, bidder, "10.00", "10.00", ErrBidTooLow},
		{"below current price", true, bidder, "12.00", "15.00", ErrBidTooLow},
		{"closed auction high amount", false, bidder, "1000", "10.00", ErrAuctionClosed},
		{"closed auction invalid amount", false, bidder, "-1", "10.00", ErrAuctionClosed},
		{"zero amount", true, bidder, "0", "10.00", ErrInvalidAmount},
		{"too many decimals", true, bidder, "15.001", "10.00", ErrInvalidAmount},
		{"seller bids", true, seller, "50", "10.00", ErrSelfBid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newActiveListing(seller)
			l.Active = tt.active

			bid, err := l.AcceptBid(tt.bidder, dec(tt.amount), dec(tt.current), 2, time.Now())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, bid)
				return
			}
			require.NoError(t, err)
			require.Equal(t, l.ID, bid.ListingID)
			require.Equal(t, tt.bidder, bid.BidderID)
			require.True(t, bid.Amount.Equal(dec(tt.amount)))
			require.NotEqual(t, uuid.Nil, bid.ID)
		})
	}
}

func TestListing_AcceptBidCarriesCurrentPrice(t *testing.T) {
	l := newActiveListing(uuid.New())

	_, err := l.AcceptBid(uuid.New(), dec("12"), dec("15"), 2, time.Now())

	var tooLow *BidTooLowError
	require.True(t, errors.As(err, &tooLow))
	require.True(t, tooLow.CurrentPrice.Equal(dec("15")))
}

func TestListing_Close(t *testing.T) {
	seller := uuid.New()
	bidder := uuid.New()
	winning := &Bid{BidderID: bidder, Amount: dec("15")}

	t.Run("seller closes with bids", func(t *testing.T) {
		l := newActiveListing(seller)
		require.NoError(t, l.Close(Caller{UserID: seller}, winning))
		require.False(t, l.Active)
		require.NotNil(t, l.WinnerID)
		require.Equal(t, bidder, *l.WinnerID)
	})

	t.Run("admin closes without bids", func(t *testing.T) {
		l := newActiveListing(seller)
		require.NoError(t, l.Close(Caller{UserID: uuid.New(), IsAdmin: true}, nil))
		require.False(t, l.Active)
		require.Nil(t, l.WinnerID)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		l := newActiveListing(seller)
		require.ErrorIs(t, l.Close(Caller{UserID: bidder}, winning), ErrForbidden)
		require.True(t, l.Active)
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		l := newActiveListing(seller)
		require.ErrorIs(t, l.Close(Caller{}, nil), ErrForbidden)
	})

	t.Run("already closed keeps winner", func(t *testing.T) {
		l := newActiveListing(seller)
		require.NoError(t, l.Close(Caller{UserID: seller}, winning))

		other := &Bid{BidderID: uuid.New(), Amount: dec("99")}
		require.ErrorIs(t, l.Close(Caller{UserID: seller}, other), ErrAuctionAlreadyClosed)
		require.Equal(t, bidder, *l.WinnerID)
	})
}

func TestNewComment(t *testing.T) {
	c, err := NewComment(uuid.New(), uuid.New(), uuid.New(), "  nice  ", time.Now())
	require.NoError(t, err)
	require.Equal(t, "nice", c.Content)

	_, err = NewComment(uuid.New(), uuid.New(), uuid.New(), " \n ", time.Now())
	require.ErrorIs(t, err, ErrEmptyComment)
}
