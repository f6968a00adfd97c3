package httpapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cristianortiz/auctionMarket/internal/auction/domain"
	"github.com/cristianortiz/auctionMarket/internal/shared/auth"
	userdomain "github.com/cristianortiz/auctionMarket/internal/user/domain"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const callerKey = "caller"

// CallerMiddleware resolves the bearer token into a domain.Caller stored in
// the request locals. Requests without an Authorization header run as anonymous.
func CallerMiddleware(secret string, users userdomain.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			c.Locals(callerKey, domain.Caller{})
			return c.Next()
		}
		if !strings.HasPrefix(header, "Bearer ") {
			return fmt.Errorf("malformed authorization header: %w", domain.ErrUnauthenticated)
		}

		userID, err := auth.ParseUserID(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn("Rejected bearer token", zap.String("path", c.Path()), zap.Error(err))
			return fmt.Errorf("%v: %w", err, domain.ErrUnauthenticated)
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, userdomain.ErrUserNotFound) {
				log.Warn("Token for unknown user", zap.String("userID", userID.String()))
				return fmt.Errorf("unknown user %s: %w", userID, domain.ErrUnauthenticated)
			}
			return err
		}

		c.Locals(callerKey, domain.Caller{UserID: user.ID, IsAdmin: user.IsAdmin})
		return c.Next()
	}
}

func callerFrom(c *fiber.Ctx) domain.Caller {
	caller, _ := c.Locals(callerKey).(domain.Caller)
	return caller
}
