package application

import (
	"context"
	"testing"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "10.00")

	added, err := NewSeedCategoriesUseCase(f.store).Execute(ctx, []string{"Books", "Art", "Books"})
	require.NoError(t, err)
	require.Equal(t, 2, added)

	categories, err := f.svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.Equal(t, "Art", categories[0].Name)
	artID := categories[0].ID

	t.Run("with category", func(t *testing.T) {
		seller := user()
		listing, err := f.svc.CreateListing(ctx, seller, CreateListingDTO{
			Title:         "  Oil painting ",
			StartingPrice: dec("250.00"),
			CategoryID:    &artID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Oil painting", listing.Title)
		assert.Equal(t, seller.UserID, listing.SellerID)
		assert.True(t, listing.Active)

		inArt, err := f.svc.ListActive(ctx, &artID)
		require.NoError(t, err)
		require.Len(t, inArt, 1)
		assert.Equal(t, listing.ID, inArt[0].ID)
	})

	tests := []struct {
		name    string
		caller  domain.Caller
		cmd     CreateListingDTO
		wantErr error
	}{
		{"anonymous", domain.Caller{}, CreateListingDTO{Title: "x", StartingPrice: dec("1")}, domain.ErrUnauthenticated},
		{"empty title", user(), CreateListingDTO{Title: "  ", StartingPrice: dec("1")}, domain.ErrInvalidTitle},
		{"zero price", user(), CreateListingDTO{Title: "x", StartingPrice: dec("0")}, domain.ErrInvalidAmount},
		{"unknown category", user(), CreateListingDTO{Title: "x", StartingPrice: dec("1"), CategoryID: ptr(int64(999))}, domain.ErrCategoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateListing(ctx, tt.caller, tt.cmd)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestGetListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "10.00")
	viewer := user()

	_, err := f.bid(viewer, "11.00")
	require.NoError(t, err)
	_, err = f.svc.PostComment(ctx, viewer, PostCommentDTO{ListingID: f.listing.ID, Content: "first"})
	require.NoError(t, err)
	_, err = f.svc.PostComment(ctx, f.seller, PostCommentDTO{ListingID: f.listing.ID, Content: "second"})
	require.NoError(t, err)
	require.NoError(t, f.svc.AddToWatchlist(ctx, viewer, f.listing.ID))

	view, err := f.svc.GetListing(ctx, viewer, f.listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "11.00", view.Summary.CurrentPrice.StringFixed(2))
	assert.Equal(t, 1, view.Summary.BidCount)
	require.Len(t, view.Bids, 1)
	assert.Equal(t, len(view.Bids), view.Summary.BidCount)
	assert.Equal(t, viewer.UserID, view.Bids[0].BidderID)
	assert.True(t, view.OnWatchlist)
	assert.False(t, view.IsOwner)
	assert.False(t, view.CanClose)
	require.Len(t, view.Comments, 2)
	assert.Equal(t, "first", view.Comments[0].Content)

	owner, err := f.svc.GetListing(ctx, f.seller, f.listing.ID)
	require.NoError(t, err)
	assert.True(t, owner.IsOwner)
	assert.True(t, owner.CanClose)
	assert.False(t, owner.OnWatchlist)

	anon, err := f.svc.GetListing(ctx, domain.Caller{}, f.listing.ID)
	require.NoError(t, err)
	assert.False(t, anon.IsOwner)
	assert.False(t, anon.OnWatchlist)

	_, err = f.svc.GetListing(ctx, viewer, uuid.New())
	require.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestComments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "10.00")

	_, err := f.svc.PostComment(ctx, user(), PostCommentDTO{ListingID: f.listing.ID, Content: "   "})
	require.ErrorIs(t, err, domain.ErrEmptyComment)

	_, err = f.svc.PostComment(ctx, domain.Caller{}, PostCommentDTO{ListingID: f.listing.ID, Content: "hi"})
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = f.svc.PostComment(ctx, user(), PostCommentDTO{ListingID: uuid.New(), Content: "hi"})
	require.ErrorIs(t, err, domain.ErrListingNotFound)

	c, err := f.svc.PostComment(ctx, user(), PostCommentDTO{ListingID: f.listing.ID, Content: " nice item "})
	require.NoError(t, err)
	assert.Equal(t, "nice item", c.Content)

	comments, err := f.svc.ListComments(ctx, f.listing.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	_, err = f.svc.ListComments(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestWatchlist(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "10.00")
	u := user()

	require.NoError(t, f.svc.AddToWatchlist(ctx, u, f.listing.ID))
	require.NoError(t, f.svc.AddToWatchlist(ctx, u, f.listing.ID))

	watched, err := f.svc.Watchlist(ctx, u)
	require.NoError(t, err)
	require.Len(t, watched, 1)
	assert.Equal(t, f.listing.ID, watched[0].ID)

	require.NoError(t, f.svc.RemoveFromWatchlist(ctx, u, f.listing.ID))
	require.NoError(t, f.svc.RemoveFromWatchlist(ctx, u, f.listing.ID))
	watched, err = f.svc.Watchlist(ctx, u)
	require.NoError(t, err)
	assert.Empty(t, watched)

	require.ErrorIs(t, f.svc.AddToWatchlist(ctx, u, uuid.New()), domain.ErrListingNotFound)
	require.ErrorIs(t, f.svc.AddToWatchlist(ctx, domain.Caller{}, f.listing.ID), domain.ErrUnauthenticated)
	_, err = f.svc.Watchlist(ctx, domain.Caller{})
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}
