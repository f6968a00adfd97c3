package application

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
)

// ListingViewDTO is the output DTO for the listing page
type ListingViewDTO struct {
	Summary     *domain.ListingSummary
	Comments    []*domain.Comment
	Bids        []*domain.Bid // oldest first
	IsOwner     bool
	OnWatchlist bool
	CanClose    bool
}

// GetListingUseCase retrieves a listing with its derived price, comments and caller flags
type GetListingUseCase struct {
	listingRepo   domain.ListingRepository
	bidRepo       domain.BidRepository
	commentRepo   domain.CommentRepository
	watchlistRepo domain.WatchlistRepository
}

// NewGetListingUseCase creates a new instance of GetListingUseCase.
func NewGetListingUseCase(listingRepo domain.ListingRepository, bidRepo domain.BidRepository,
	commentRepo domain.CommentRepository, watchlistRepo domain.WatchlistRepository) *GetListingUseCase {
	return &GetListingUseCase{
		listingRepo:   listingRepo,
		bidRepo:       bidRepo,
		commentRepo:   commentRepo,
		watchlistRepo: watchlistRepo,
	}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, caller domain.Caller, listingID uuid.UUID) (*ListingViewDTO, error) {
	summary, err := uc.listingRepo.GetSummary(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing use case: %w", err)
	}

	bids, err := uc.bidRepo.GetBidsByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing use case: bids: %w", err)
	}

	comments, err := uc.commentRepo.GetByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing use case: comments: %w", err)
	}

	// summary and bids are separate reads, the view is derived from the bids it shows
	summary.BidCount = len(bids)
	summary.CurrentPrice = domain.CurrentPrice(&summary.Listing, domain.WinningBid(bids))

	dto := &ListingViewDTO{
		Summary:  summary,
		Comments: comments,
		Bids:     bids,
		IsOwner:  caller.Authenticated() && caller.UserID == summary.SellerID,
		CanClose: summary.Active && summary.CanClose(caller),
	}

	// anonymous callers have no watchlist
	if caller.Authenticated() {
		dto.OnWatchlist, err = uc.watchlistRepo.Contains(ctx, caller.UserID, listingID)
		if err != nil {
			return nil, fmt.Errorf("get listing use case: watchlist: %w", err)
		}
	}

	return dto, nil
}
