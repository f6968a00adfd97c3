package httpapi

import (
	"time"

	"github.com/cristianortiz/auctionMarket/internal/auction/application"
	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// createListingRequest accepts JSON or form bodies. Money travels as a string.
type createListingRequest struct {
	Title         string  `json:"title" form:"title"`
	Description   string  `json:"description" form:"description"`
	StartingPrice string  `json:"starting_price" form:"starting_price"`
	CategoryID    *int64  `json:"category_id" form:"category_id"`
	ImageURL      *string `json:"image_url" form:"image_url"`
}

// listingActionRequest carries exactly one action for POST /listings/:id,
// the first non-nil field wins.
type listingActionRequest struct {
	BidAmount       *string `json:"bid_amount" form:"bid_amount"`
	CloseAuction    *string `json:"close_auction" form:"close_auction"`
	Comment         *string `json:"comment" form:"comment"`
	AddWatchlist    *string `json:"add_watchlist" form:"add_watchlist"`
	RemoveWatchlist *string `json:"remove_watchlist" form:"remove_watchlist"`
}

type listingResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StartingPrice string     `json:"starting_price"`
	CurrentPrice  string     `json:"current_price"`
	BidCount      int        `json:"bid_count"`
	ImageURL      *string    `json:"image_url,omitempty"`
	CategoryID    *int64     `json:"category_id,omitempty"`
	SellerID      uuid.UUID  `json:"seller_id"`
	Active        bool       `json:"active"`
	WinnerID      *uuid.UUID `json:"winner_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type listingViewResponse struct {
	Listing     listingResponse   `json:"listing"`
	Comments    []commentResponse `json:"comments"`
	Bids        []bidEntry        `json:"bids"`
	IsOwner     bool              `json:"is_owner"`
	OnWatchlist bool              `json:"on_watchlist"`
	CanClose    bool              `json:"can_close"`
}

type bidResponse struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listing_id"`
	BidderID     uuid.UUID `json:"bidder_id"`
	Amount       string    `json:"amount"`
	BidTime      time.Time `json:"bid_time"`
	CurrentPrice string    `json:"current_price"`
}

type bidEntry struct {
	BidderID uuid.UUID `json:"bidder_id"`
	Amount   string    `json:"amount"`
	BidTime  time.Time `json:"bid_time"`
}

type closeResponse struct {
	ListingID  uuid.UUID  `json:"listing_id"`
	Active     bool       `json:"active"`
	WinnerID   *uuid.UUID `json:"winner_id"`
	FinalPrice string     `json:"final_price"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toListingResponse(l domain.Listing, currentPrice decimal.Decimal, bidCount int) listingResponse {
	return listingResponse{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		StartingPrice: money(l.StartingPrice),
		CurrentPrice:  money(currentPrice),
		BidCount:      bidCount,
		ImageURL:      l.ImageURL,
		CategoryID:    l.CategoryID,
		SellerID:      l.SellerID,
		Active:        l.Active,
		WinnerID:      l.WinnerID,
		CreatedAt:     l.CreatedAt,
	}
}

func toSummaryResponses(summaries []*domain.ListingSummary) []listingResponse {
	out := make([]listingResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toListingResponse(s.Listing, s.CurrentPrice, s.BidCount))
	}
	return out
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func toListingViewResponse(v *application.ListingViewDTO) listingViewResponse {
	comments := make([]commentResponse, 0, len(v.Comments))
	for _, c := range v.Comments {
		comments = append(comments, toCommentResponse(c))
	}
	bids := make([]bidEntry, 0, len(v.Bids))
	for _, b := range v.Bids {
		bids = append(bids, bidEntry{BidderID: b.BidderID, Amount: money(b.Amount), BidTime: b.BidTime})
	}
	return listingViewResponse{
		Listing:     toListingResponse(v.Summary.Listing, v.Summary.CurrentPrice, v.Summary.BidCount),
		Comments:    comments,
		Bids:        bids,
		IsOwner:     v.IsOwner,
		OnWatchlist: v.OnWatchlist,
		CanClose:    v.CanClose,
	}
}
