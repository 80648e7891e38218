package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nicles7/kudos-app/internal/entities"
	oapi "github.com/nicles7/kudos-app/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderUserID carries the id of the acting user.
const HeaderUserID = "X-User-Id"

const localUser = "user"

// UserResolver looks up the acting user.
type UserResolver interface {
	User(ctx context.Context, userID string) (*entities.User, error)
}

// Identity resolves the X-User-Id header to a user and stores it for handlers.
// Requests without a known user are answered with 401.
func Identity(log *zap.SugaredLogger, users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderUserID))
		if id == "" {
			return unauthenticated(c, "missing "+HeaderUserID+" header")
		}
		usr, err := users.User(c.Context(), id)
		if err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				return unauthenticated(c, "unknown user")
			}
			log.Errorw("failed to resolve user", "error", err, "user_id", id)
			return c.Status(http.StatusInternalServerError).JSON(oapi.ErrorResponse{Error: oapi.ErrorBody{Code: oapi.INTERNAL, Message: "internal error"}})
		}
		c.Locals(localUser, usr)
		return c.Next()
	}
}

// CurrentUser returns the user stored by Identity.
func CurrentUser(c *fiber.Ctx) (*entities.User, bool) {
	usr, ok := c.Locals(localUser).(*entities.User)
	return usr, ok && usr != nil
}

// RequireRole rejects users whose role is not among roles.
func RequireRole(roles ...entities.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usr, ok := CurrentUser(c)
		if !ok {
			return unauthenticated(c, "unauthenticated")
		}
		for _, r := range roles {
			if usr.Role == r {
				return c.Next()
			}
		}
		return c.Status(http.StatusForbidden).JSON(oapi.ErrorResponse{Error: oapi.ErrorBody{Code: oapi.FORBIDDEN, Message: "forbidden"}})
	}
}

func unauthenticated(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(oapi.ErrorResponse{Error: oapi.ErrorBody{Code: oapi.UNAUTHENTICATED, Message: msg}})
}
