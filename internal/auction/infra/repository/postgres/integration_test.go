package postgres_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/cristianortiz/auctionMarket/internal/auction/application"
	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/cristianortiz/auctionMarket/internal/auction/infra/repository/postgres"
	"github.com/cristianortiz/auctionMarket/internal/shared/db/migrations"
	userdomain "github.com/cristianortiz/auctionMarket/internal/user/domain"
	userpostgres "github.com/cristianortiz/auctionMarket/internal/user/infra/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type pgEnv struct {
	pool  *pgxpool.Pool
	svc   application.MarketplaceService
	bids  *postgres.BidRepository
	users *userpostgres.UserRepository
}

// newPGEnv needs TEST_DATABASE_URL pointing at a disposable database.
func newPGEnv(t *testing.T) *pgEnv {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, migrations.RunMigrations(dsn))

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return &pgEnv{
		pool: pool,
		svc: application.NewMarketplaceService(application.Repositories{
			Ledger:     postgres.NewLedger(pool),
			Listings:   postgres.NewListingRepository(pool),
			Bids:       postgres.NewBidRepository(pool),
			Comments:   postgres.NewCommentRepository(pool),
			Watchlist:  postgres.NewWatchlistRepository(pool),
			Categories: postgres.NewCategoryRepository(pool),
		}, 2),
		bids:  postgres.NewBidRepository(pool),
		users: userpostgres.NewUserRepository(pool),
	}
}

func (e *pgEnv) user(t *testing.T) domain.Caller {
	t.Helper()
	id := uuid.New()
	require.NoError(t, e.users.Save(context.Background(), &userdomain.User{ID: id, Username: "u-" + id.String()}))
	return domain.Caller{UserID: id}
}

func (e *pgEnv) listing(t *testing.T, seller domain.Caller, price string) uuid.UUID {
	t.Helper()
	l, err := e.svc.CreateListing(context.Background(), seller, application.CreateListingDTO{
		Title:         "Integration item",
		StartingPrice: decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return l.ID
}

func TestPostgres_BidAndClose(t *testing.T) {
	e := newPGEnv(t)
	ctx := context.Background()
	seller, b, c := e.user(t), e.user(t), e.user(t)
	id := e.listing(t, seller, "10.00")

	_, err := e.svc.PlaceBid(ctx, b, application.PlaceBidDTO{ListingID: id, Amount: decimal.RequireFromString("15.00")})
	require.NoError(t, err)

	_, err = e.svc.PlaceBid(ctx, c, application.PlaceBidDTO{ListingID: id, Amount: decimal.RequireFromString("12.00")})
	var tooLow *domain.BidTooLowError
	require.True(t, errors.As(err, &tooLow))
	require.Equal(t, "15.00", tooLow.CurrentPrice.StringFixed(2))

	_, err = e.svc.PlaceBid(ctx, seller, application.PlaceBidDTO{ListingID: id, Amount: decimal.RequireFromString("50.00")})
	require.ErrorIs(t, err, domain.ErrSelfBid)

	view, err := e.svc.GetListing(ctx, b, id)
	require.NoError(t, err)
	require.Equal(t, "15.00", view.Summary.CurrentPrice.StringFixed(2))
	require.Equal(t, 1, view.Summary.BidCount)

	_, err = e.svc.CloseAuction(ctx, c, id)
	require.ErrorIs(t, err, domain.ErrForbidden)

	res, err := e.svc.CloseAuction(ctx, seller, id)
	require.NoError(t, err)
	require.Equal(t, b.UserID, *res.WinnerID)

	_, err = e.svc.CloseAuction(ctx, seller, id)
	require.ErrorIs(t, err, domain.ErrAuctionAlreadyClosed)

	_, err = e.svc.PlaceBid(ctx, c, application.PlaceBidDTO{ListingID: id, Amount: decimal.RequireFromString("99.00")})
	require.ErrorIs(t, err, domain.ErrAuctionClosed)

	bids, err := e.bids.GetBidsByListingID(ctx, id)
	require.NoError(t, err)
	require.Len(t, bids, 1)
}

func TestPostgres_ConcurrentSameAmount(t *testing.T) {
	e := newPGEnv(t)
	ctx := context.Background()
	seller := e.user(t)
	id := e.listing(t, seller, "99.00")

	const bidders = 10
	callers := make([]domain.Caller, bidders)
	for i := range callers {
		callers[i] = e.user(t)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for _, caller := range callers {
		wg.Add(1)
		go func(caller domain.Caller) {
			defer wg.Done()
			_, err := e.svc.PlaceBid(ctx, caller, application.PlaceBidDTO{ListingID: id, Amount: decimal.RequireFromString("100.00")})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(caller)
	}
	wg.Wait()

	require.Equal(t, 1, accepted)
	bids, err := e.bids.GetBidsByListingID(ctx, id)
	require.NoError(t, err)
	require.Len(t, bids, 1)
}

func TestPostgres_WatchlistCommentsCategories(t *testing.T) {
	e := newPGEnv(t)
	ctx := context.Background()
	seller, u := e.user(t), e.user(t)
	id := e.listing(t, seller, "5.00")

	require.NoError(t, e.svc.AddToWatchlist(ctx, u, id))
	require.NoError(t, e.svc.AddToWatchlist(ctx, u, id))
	watched, err := e.svc.Watchlist(ctx, u)
	require.NoError(t, err)
	require.Len(t, watched, 1)
	require.Equal(t, "5.00", watched[0].CurrentPrice.StringFixed(2))

	_, err = e.svc.PostComment(ctx, u, application.PostCommentDTO{ListingID: id, Content: "first"})
	require.NoError(t, err)
	comments, err := e.svc.ListComments(ctx, id)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	seed := application.NewSeedCategoriesUseCase(postgres.NewCategoryRepository(e.pool))
	_, err = seed.Execute(ctx, []string{"Integration Category"})
	require.NoError(t, err)
	added, err := seed.Execute(ctx, []string{"Integration Category"})
	require.NoError(t, err)
	require.Zero(t, added)
}
