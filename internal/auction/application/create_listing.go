package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateListingDTO is DTO input for CreateListing useCase
type CreateListingDTO struct {
	Title         string
	Description   string
	StartingPrice decimal.Decimal
	CategoryID    *int64
	ImageURL      *string
}

// CreateListingUseCase opens a new auction, the caller becomes the seller
type CreateListingUseCase struct {
	listingRepo  domain.ListingRepository
	categoryRepo domain.CategoryRepository
	precision    int32
}

func NewCreateListingUseCase(listingRepo domain.ListingRepository, categoryRepo domain.CategoryRepository, precision int32) *CreateListingUseCase {
	return &CreateListingUseCase{
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		precision:    precision,
	}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, caller domain.Caller, cmd CreateListingDTO) (*domain.Listing, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	listing, err := domain.NewListing(uuid.New(), caller.UserID, cmd.Title, cmd.Description, cmd.StartingPrice,
		cmd.CategoryID, cmd.ImageURL, uc.precision, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("create listing use case: %w", err)
	}

	if listing.CategoryID != nil {
		ok, err := uc.categoryRepo.Exists(ctx, *listing.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("create listing use case: category lookup: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("create listing use case: category %d: %w", *listing.CategoryID, domain.ErrCategoryNotFound)
		}
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		log.Error("CreateListingUseCase: Failed to save listing",
			zap.String("sellerID", caller.UserID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create listing use case: %w", err)
	}

	log.Info("Listing created",
		zap.String("listingID", listing.ID.String()),
		zap.String("sellerID", listing.SellerID.String()),
		zap.String("startingPrice", listing.StartingPrice.String()),
	)
	return listing, nil
}
