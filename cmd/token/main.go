// Command token provisions a user and prints a bearer token for it. Accounts
// are managed outside the marketplace; this is meant for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionMarket/internal/shared/auth"
	"github.com/cristianortiz/auctionMarket/internal/shared/config"
	"github.com/cristianortiz/auctionMarket/internal/shared/db"
	"github.com/cristianortiz/auctionMarket/internal/shared/db/migrations"
	"github.com/cristianortiz/auctionMarket/internal/shared/logger"
	"github.com/cristianortiz/auctionMarket/internal/user/domain"
	"github.com/cristianortiz/auctionMarket/internal/user/infra/repository/postgres"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	username := flag.String("username", "", "username of the account")
	id := flag.String("id", "", "existing user id, a new one is generated when empty")
	admin := flag.Bool("admin", false, "grant administrator rights")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	logger := logger.GetLogger()
	defer logger.Sync()

	if *username == "" {
		logger.Fatal("-username is required")
	}
	userID := uuid.New()
	if *id != "" {
		parsed, err := uuid.Parse(*id)
		if err != nil {
			logger.Fatal("Invalid -id", zap.Error(err))
		}
		userID = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
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

	user := &domain.User{ID: userID, Username: *username, IsAdmin: *admin}
	if err := postgres.NewUserRepository(pool).Save(ctx, user); err != nil {
		logger.Fatal("Saving user failed", zap.Error(err))
	}

	token, err := auth.NewAccessToken(cfg.Auth.JWTSecret, user.ID, *ttl)
	if err != nil {
		logger.Fatal("Signing token failed", zap.Error(err))
	}
	logger.Info("User provisioned", zap.String("userID", user.ID.String()), zap.Bool("admin", user.IsAdmin))
	fmt.Println(token)
}
