package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cristianortiz/auctionMarket/internal/auction/application"
	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/cristianortiz/auctionMarket/internal/auction/infra/httpapi"
	auctionmemory "github.com/cristianortiz/auctionMarket/internal/auction/infra/repository/memory"
	auctionpostgres "github.com/cristianortiz/auctionMarket/internal/auction/infra/repository/postgres"
	"github.com/cristianortiz/auctionMarket/internal/shared/config"
	"github.com/cristianortiz/auctionMarket/internal/shared/db"
	"github.com/cristianortiz/auctionMarket/internal/shared/db/migrations"
	"github.com/cristianortiz/auctionMarket/internal/shared/httpserver"
	"github.com/cristianortiz/auctionMarket/internal/shared/logger"
	userdomain "github.com/cristianortiz/auctionMarket/internal/user/domain"
	usermemory "github.com/cristianortiz/auctionMarket/internal/user/infra/repository/memory"
	userpostgres "github.com/cristianortiz/auctionMarket/internal/user/infra/repository/postgres"
	"go.uber.org/zap"
)

func main() {
	// Inicializa logger
	log := logger.GetLogger()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn("Unknown log level, keeping default", zap.String("level", cfg.Log.Level), zap.Error(err))
	}

	log.Info("Starting AuctionMarket server...", zap.String("store", cfg.Store.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		repos application.Repositories
		users userdomain.UserRepository
	)
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		// Ejecuta migraciones de base de datos
		log.Info("Running database migrations...")
		if err := migrations.RunMigrations(cfg.DB.PostgresDSN()); err != nil {
			log.Fatal("Database migration failed", zap.Error(err))
		}
		log.Info("Database migrations completed successfully.")

		pool, err := db.GetPostgresDBPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal("Database connection failed", zap.Error(err))
		}
		defer pool.Close()

		repos = application.Repositories{
			Ledger:     auctionpostgres.NewLedger(pool),
			Listings:   auctionpostgres.NewListingRepository(pool),
			Bids:       auctionpostgres.NewBidRepository(pool),
			Comments:   auctionpostgres.NewCommentRepository(pool),
			Watchlist:  auctionpostgres.NewWatchlistRepository(pool),
			Categories: auctionpostgres.NewCategoryRepository(pool),
		}
		users = userpostgres.NewUserRepository(pool)

	case config.StoreDriverMemory:
		store := auctionmemory.NewStore()
		if _, err := application.NewSeedCategoriesUseCase(store).Execute(ctx, domain.DefaultCategories); err != nil {
			log.Fatal("Seeding categories failed", zap.Error(err))
		}
		repos = application.Repositories{
			Ledger:     store,
			Listings:   store,
			Bids:       store,
			Comments:   store,
			Watchlist:  store,
			Categories: store,
		}
		users = usermemory.NewUserRepository()
		log.Warn("Using in-memory store, data is lost on exit and no user can authenticate")
	}

	svc := application.NewMarketplaceService(repos, cfg.Bidding.AmountPrecision)

	// Arranca el servidor HTTP
	server := httpserver.NewServer(cfg.Server.ShutdownTimeout, httpapi.ErrorHandler)
	httpapi.NewMarketplaceHandler(svc).RegisterRoutes(server.App(), httpapi.CallerMiddleware(cfg.Auth.JWTSecret, users))

	if err := server.Start(ctx, cfg.Server.Addr); err != nil {
		log.Fatal("HTTP server failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
