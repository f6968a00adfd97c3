package application

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"go.uber.org/zap"
)

// ListActiveListingsUseCase returns the open auctions, newest first
type ListActiveListingsUseCase struct {
	listingRepo domain.ListingRepository
}

func NewListActiveListingsUseCase(listingRepo domain.ListingRepository) *ListActiveListingsUseCase {
	return &ListActiveListingsUseCase{listingRepo: listingRepo}
}

func (uc *ListActiveListingsUseCase) Execute(ctx context.Context, categoryID *int64) ([]*domain.ListingSummary, error) {
	listings, err := uc.listingRepo.ListActive(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list active listings use case: %w", err)
	}
	return listings, nil
}

type ListCategoriesUseCase struct {
	categoryRepo domain.CategoryRepository
}

func NewListCategoriesUseCase(categoryRepo domain.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*domain.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories use case: %w", err)
	}
	return categories, nil
}

// SeedCategoriesUseCase inserts the given category names, existing ones are left as they are
type SeedCategoriesUseCase struct {
	categoryRepo domain.CategoryRepository
}

func NewSeedCategoriesUseCase(categoryRepo domain.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute returns how many names were newly added.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context, names []string) (int, error) {
	added := 0
	for _, name := range names {
		created, err := uc.categoryRepo.EnsureExists(ctx, name)
		if err != nil {
			return added, fmt.Errorf("seed categories use case: %q: %w", name, err)
		}
		if created {
			added++
			log.Info("Added category", zap.String("name", name))
		} else {
			log.Info("Category already exists", zap.String("name", name))
		}
	}
	return added, nil
}
