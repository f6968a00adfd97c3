package application

import (
	"context"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
)

// MarketplaceService defines application interface layer of auction module
// exposes uses cases to external layer, aka infra
type MarketplaceService interface {
	// PlaceBid handles logic when a user makes a bid on a listing
	// receives a command with necesary data and returns the created bid or an error
	PlaceBid(ctx context.Context, caller domain.Caller, cmd PlaceBidDTO) (*domain.Bid, error)
	CloseAuction(ctx context.Context, caller domain.Caller, listingID uuid.UUID) (*CloseAuctionResultDTO, error)
	CreateListing(ctx context.Context, caller domain.Caller, cmd CreateListingDTO) (*domain.Listing, error)
	GetListing(ctx context.Context, caller domain.Caller, listingID uuid.UUID) (*ListingViewDTO, error)
	ListActive(ctx context.Context, categoryID *int64) ([]*domain.ListingSummary, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	PostComment(ctx context.Context, caller domain.Caller, cmd PostCommentDTO) (*domain.Comment, error)
	ListComments(ctx context.Context, listingID uuid.UUID) ([]*domain.Comment, error)
	AddToWatchlist(ctx context.Context, caller domain.Caller, listingID uuid.UUID) error
	RemoveFromWatchlist(ctx context.Context, caller domain.Caller, listingID uuid.UUID) error
	Watchlist(ctx context.Context, caller domain.Caller) ([]*domain.ListingSummary, error)
}

// Repositories groups the storage dependencies of the marketplace use cases
type Repositories struct {
	Ledger     domain.Ledger
	Listings   domain.ListingRepository
	Bids       domain.BidRepository
	Comments   domain.CommentRepository
	Watchlist  domain.WatchlistRepository
	Categories domain.CategoryRepository
}

// concret implementation of MarketplaceService (struct)
type marketplaceService struct {
	placeBidUC       *PlaceBidUseCase
	closeAuctionUC   *CloseAuctionUseCase
	createListingUC  *CreateListingUseCase
	getListingUC     *GetListingUseCase
	listActiveUC     *ListActiveListingsUseCase
	listCategoriesUC *ListCategoriesUseCase
	postCommentUC    *PostCommentUseCase
	listCommentsUC   *ListCommentsUseCase
	watchlistUC      *WatchlistUseCase
}

// NewMarketplaceService wires every use case on top of repos. precision is the
// number of fractional digits accepted in money amounts.
func NewMarketplaceService(repos Repositories, precision int32) MarketplaceService {
	return &marketplaceService{
		placeBidUC:       NewPlaceBidUseCase(repos.Ledger, precision),
		closeAuctionUC:   NewCloseAuctionUseCase(repos.Ledger),
		createListingUC:  NewCreateListingUseCase(repos.Listings, repos.Categories, precision),
		getListingUC:     NewGetListingUseCase(repos.Listings, repos.Bids, repos.Comments, repos.Watchlist),
		listActiveUC:     NewListActiveListingsUseCase(repos.Listings),
		listCategoriesUC: NewListCategoriesUseCase(repos.Categories),
		postCommentUC:    NewPostCommentUseCase(repos.Listings, repos.Comments),
		listCommentsUC:   NewListCommentsUseCase(repos.Listings, repos.Comments),
		watchlistUC:      NewWatchlistUseCase(repos.Listings, repos.Watchlist),
	}
}

// PlaceBid implements MarketplaceService.
func (s *marketplaceService) PlaceBid(ctx context.Context, caller domain.Caller, cmd PlaceBidDTO) (*domain.Bid, error) {
	return s.placeBidUC.Execute(ctx, caller, cmd)
}

func (s *marketplaceService) CloseAuction(ctx context.Context, caller domain.Caller, listingID uuid.UUID) (*CloseAuctionResultDTO, error) {
	return s.closeAuctionUC.Execute(ctx, caller, listingID)
}

func (s *marketplaceService) CreateListing(ctx context.Context, caller domain.Caller, cmd CreateListingDTO) (*domain.Listing, error) {
	return s.createListingUC.Execute(ctx, caller, cmd)
}

func (s *marketplaceService) GetListing(ctx context.Context, caller domain.Caller, listingID uuid.UUID) (*ListingViewDTO, error) {
	return s.getListingUC.Execute(ctx, caller, listingID)
}

func (s *marketplaceService) ListActive(ctx context.Context, categoryID *int64) ([]*domain.ListingSummary, error) {
	return s.listActiveUC.Execute(ctx, categoryID)
}

func (s *marketplaceService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.listCategoriesUC.Execute(ctx)
}

func (s *marketplaceService) PostComment(ctx context.Context, caller domain.Caller, cmd PostCommentDTO) (*domain.Comment, error) {
	return s.postCommentUC.Execute(ctx, caller, cmd)
}

func (s *marketplaceService) ListComments(ctx context.Context, listingID uuid.UUID) ([]*domain.Comment, error) {
	return s.listCommentsUC.Execute(ctx, listingID)
}

func (s *marketplaceService) AddToWatchlist(ctx context.Context, caller domain.Caller, listingID uuid.UUID) error {
	return s.watchlistUC.Add(ctx, caller, listingID)
}

func (s *marketplaceService) RemoveFromWatchlist(ctx context.Context, caller domain.Caller, listingID uuid.UUID) error {
	return s.watchlistUC.Remove(ctx, caller, listingID)
}

func (s *marketplaceService) Watchlist(ctx context.Context, caller domain.Caller) ([]*domain.ListingSummary, error) {
	return s.watchlistUC.List(ctx, caller)
}
