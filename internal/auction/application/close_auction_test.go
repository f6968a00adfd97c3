package application

import (
	"context"
	"testing"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCloseAuction_WinnerIsHighestBidder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "10.00")
	b, c := user(), user()

	_, err := f.bid(b, "15.00")
	require.NoError(t, err)
	_, err = f.bid(c, "20.00")
	require.NoError(t, err)

	res, err := f.svc.CloseAuction(ctx, f.seller, f.listing.ID)
	require.NoError(t, err)
	require.NotNil(t, res.WinnerID)
	require.Equal(t, c.UserID, *res.WinnerID)
	require.Equal(t, "20.00", res.FinalPrice.StringFixed(2))

	listing, err := f.store.GetByID(ctx, f.listing.ID)
	require.NoError(t, err)
	require.False(t, listing.Active)
	require.Equal(t, c.UserID, *listing.WinnerID)
}

func TestCloseAuction_NoBidsHasNoWinner(t *testing.T) {
	f := newFixture(t, "10.00")

	res, err := f.svc.CloseAuction(context.Background(), f.seller, f.listing.ID)
	require.NoError(t, err)
	require.Nil(t, res.WinnerID)
	require.Equal(t, "10.00", res.FinalPrice.StringFixed(2))
}

func TestCloseAuction_AdminMayClose(t *testing.T) {
	f := newFixture(t, "10.00")
	admin := domain.Caller{UserID: uuid.New(), IsAdmin: true}

	_, err := f.svc.CloseAuction(context.Background(), admin, f.listing.ID)
	require.NoError(t, err)
}

func TestCloseAuction_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("other user", func(t *testing.T) {
		f := newFixture(t, "10.00")
		_, err := f.svc.CloseAuction(ctx, user(), f.listing.ID)
		require.ErrorIs(t, err, domain.ErrForbidden)

		listing, err := f.store.GetByID(ctx, f.listing.ID)
		require.NoError(t, err)
		require.True(t, listing.Active)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t, "10.00")
		_, err := f.svc.CloseAuction(ctx, domain.Caller{}, f.listing.ID)
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("unknown listing", func(t *testing.T) {
		f := newFixture(t, "10.00")
		_, err := f.svc.CloseAuction(ctx, f.seller, uuid.New())
		require.ErrorIs(t, err, domain.ErrListingNotFound)
	})

	t.Run("already closed keeps winner", func(t *testing.T) {
		f := newFixture(t, "10.00")
		bidder := user()
		_, err := f.bid(bidder, "12.00")
		require.NoError(t, err)
		_, err = f.svc.CloseAuction(ctx, f.seller, f.listing.ID)
		require.NoError(t, err)

		_, err = f.svc.CloseAuction(ctx, f.seller, f.listing.ID)
		require.ErrorIs(t, err, domain.ErrAuctionAlreadyClosed)

		listing, err := f.store.GetByID(ctx, f.listing.ID)
		require.NoError(t, err)
		require.Equal(t, bidder.UserID, *listing.WinnerID)
	})
}
