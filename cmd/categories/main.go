// Command categories seeds the default listing categories. Running it again
// only reports the names that already exist.
package main

import (
	"context"

	"github.com/cristianortiz/auctionMarket/internal/auction/application"
	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/cristianortiz/auctionMarket/internal/auction/infra/repository/postgres"
	"github.com/cristianortiz/auctionMarket/internal/shared/config"
	"github.com/cristianortiz/auctionMarket/internal/shared/db"
	"github.com/cristianortiz/auctionMarket/internal/shared/db/migrations"
	"github.com/cristianortiz/auctionMarket/internal/shared/logger"
	"go.uber.org/zap"
)

func main() {
	logger := logger.GetLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	if cfg.Store.Driver != config.StoreDriverPostgres {
		logger.Fatal("Category seeding needs the postgres store", zap.String("store", cfg.Store.Driver))
	}

	ctx := context.Background()
	if err := migrations.RunMigrations(cfg.DB.PostgresDSN()); err != nil {
		logger.Fatal("Database migration failed", zap.Error(err))
	}
	pool, err := db.GetPostgresDBPool(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()

	added, err := application.NewSeedCategoriesUseCase(postgres.NewCategoryRepository(pool)).Execute(ctx, domain.DefaultCategories)
	if err != nil {
		logger.Fatal("Seeding categories failed", zap.Error(err))
	}
	logger.Info("Categories seeded", zap.Int("added", added), zap.Int("total", len(domain.DefaultCategories)))
}
