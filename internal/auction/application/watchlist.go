package application

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
)

// WatchlistUseCase toggles and lists the listings a user follows. Add and Remove are idempotent.
type WatchlistUseCase struct {
	listingRepo   domain.ListingRepository
	watchlistRepo domain.WatchlistRepository
}

func NewWatchlistUseCase(listingRepo domain.ListingRepository, watchlistRepo domain.WatchlistRepository) *WatchlistUseCase {
	return &WatchlistUseCase{
		listingRepo:   listingRepo,
		watchlistRepo: watchlistRepo,
	}
}

func (uc *WatchlistUseCase) Add(ctx context.Context, caller domain.Caller, listingID uuid.UUID) error {
	if err := uc.checkListing(ctx, caller, listingID); err != nil {
		return fmt.Errorf("add to watchlist use case: %w", err)
	}
	if err := uc.watchlistRepo.Add(ctx, caller.UserID, listingID); err != nil {
		return fmt.Errorf("add to watchlist use case: %w", err)
	}
	return nil
}

func (uc *WatchlistUseCase) Remove(ctx context.Context, caller domain.Caller, listingID uuid.UUID) error {
	if err := uc.checkListing(ctx, caller, listingID); err != nil {
		return fmt.Errorf("remove from watchlist use case: %w", err)
	}
	if err := uc.watchlistRepo.Remove(ctx, caller.UserID, listingID); err != nil {
		return fmt.Errorf("remove from watchlist use case: %w", err)
	}
	return nil
}

func (uc *WatchlistUseCase) List(ctx context.Context, caller domain.Caller) ([]*domain.ListingSummary, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	listings, err := uc.watchlistRepo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("watchlist use case: %w", err)
	}
	return listings, nil
}

func (uc *WatchlistUseCase) checkListing(ctx context.Context, caller domain.Caller, listingID uuid.UUID) error {
	if !caller.Authenticated() {
		return domain.ErrUnauthenticated
	}
	_, err := uc.listingRepo.GetByID(ctx, listingID)
	return err
}
