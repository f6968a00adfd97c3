package httpapi

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cristianortiz/auctionMarket/internal/auction/application"
	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/cristianortiz/auctionMarket/internal/shared/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var log = logger.GetLogger()

// MarketplaceHandler exposes the marketplace use cases over HTTP
type MarketplaceHandler struct {
	svc application.MarketplaceService
}

func NewMarketplaceHandler(svc application.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{svc: svc}
}

// RegisterRoutes mounts the marketplace routes behind the caller middleware.
func (h *MarketplaceHandler) RegisterRoutes(r fiber.Router, callerMW fiber.Handler) {
	g := r.Group("/", callerMW)
	g.Get("/listings", h.listActive)
	g.Post("/listings", h.createListing)
	g.Get("/listings/:id", h.getListing)
	g.Post("/listings/:id", h.listingAction)
	g.Get("/watchlist", h.watchlist)
	g.Get("/categories", h.categories)
}

func (h *MarketplaceHandler) listActive(c *fiber.Ctx) error {
	var categoryID *int64
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "category must be an integer id")
		}
		categoryID = &id
	}

	listings, err := h.svc.ListActive(c.UserContext(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(toSummaryResponses(listings))
}

func (h *MarketplaceHandler) createListing(c *fiber.Ctx) error {
	var req createListingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	price, err := parseAmount(req.StartingPrice)
	if err != nil {
		return err
	}

	listing, err := h.svc.CreateListing(c.UserContext(), callerFrom(c), application.CreateListingDTO{
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: price,
		CategoryID:    req.CategoryID,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toListingResponse(*listing, listing.StartingPrice, 0))
}

func (h *MarketplaceHandler) getListing(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}
	view, err := h.svc.GetListing(c.UserContext(), callerFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(toListingViewResponse(view))
}

// listingAction dispatches the listing page actions on the field present in the body.
func (h *MarketplaceHandler) listingAction(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}
	var req listingActionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	ctx := c.UserContext()
	caller := callerFrom(c)

	switch {
	case req.BidAmount != nil:
		amount, err := parseAmount(*req.BidAmount)
		if err != nil {
			return err
		}
		bid, err := h.svc.PlaceBid(ctx, caller, application.PlaceBidDTO{ListingID: id, Amount: amount})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(bidResponse{
			ID:           bid.ID,
			ListingID:    bid.ListingID,
			BidderID:     bid.BidderID,
			Amount:       money(bid.Amount),
			BidTime:      bid.BidTime,
			CurrentPrice: money(bid.Amount),
		})

	case req.CloseAuction != nil:
		res, err := h.svc.CloseAuction(ctx, caller, id)
		if err != nil {
			return err
		}
		return c.JSON(closeResponse{
			ListingID:  res.ListingID,
			Active:     false,
			WinnerID:   res.WinnerID,
			FinalPrice: money(res.FinalPrice),
		})

	case req.Comment != nil:
		comment, err := h.svc.PostComment(ctx, caller, application.PostCommentDTO{ListingID: id, Content: *req.Comment})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toCommentResponse(comment))

	case req.AddWatchlist != nil:
		if err := h.svc.AddToWatchlist(ctx, caller, id); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"on_watchlist": true})

	case req.RemoveWatchlist != nil:
		if err := h.svc.RemoveFromWatchlist(ctx, caller, id); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"on_watchlist": false})
	}

	return fiber.NewError(fiber.StatusBadRequest, "unknown action")
}

func (h *MarketplaceHandler) watchlist(c *fiber.Ctx) error {
	listings, err := h.svc.Watchlist(c.UserContext(), callerFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(toSummaryResponses(listings))
}

func (h *MarketplaceHandler) categories(c *fiber.Ctx) error {
	categories, err := h.svc.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse{ID: cat.ID, Name: cat.Name})
	}
	return c.JSON(out)
}

// an unparseable id can never match a listing
func listingID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, domain.ErrListingNotFound
	}
	return id, nil
}

// plain decimal notation only, exponent forms are rejected before parsing
var amountPattern = regexp.MustCompile(`^\d{1,8}(\.\d{1,8})?$`)

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if !amountPattern.MatchString(raw) {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	return amount, nil
}
