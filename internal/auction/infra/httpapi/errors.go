package httpapi

import (
	"errors"
	"net/http"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const bidTooLowMessage = "Bid must be higher than the current price."

// MapErrorToHTTP maps domain errors to an HTTP status code and a user-facing message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "amount must be positive with at most two decimal places"
	case errors.Is(err, domain.ErrInvalidTitle):
		return http.StatusBadRequest, "title is required and must be at most 64 characters"
	case errors.Is(err, domain.ErrEmptyComment):
		return http.StatusBadRequest, "comment cannot be empty"
	case errors.Is(err, domain.ErrAuctionClosed):
		return http.StatusConflict, "This auction is closed."
	case errors.Is(err, domain.ErrAuctionAlreadyClosed):
		return http.StatusConflict, "This auction is already closed."
	case errors.Is(err, domain.ErrBidTooLow):
		return http.StatusConflict, bidTooLowMessage
	case errors.Is(err, domain.ErrSelfBid):
		return http.StatusForbidden, "You cannot bid on your own listing."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Only the seller or an administrator can close this auction."
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ErrorHandler is the fiber error handler for the marketplace routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	status, msg := MapErrorToHTTP(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := fiber.Map{"error": msg}
	var tooLow *domain.BidTooLowError
	if errors.As(err, &tooLow) {
		body["current_price"] = money(tooLow.CurrentPrice)
	}
	return c.Status(status).JSON(body)
}
