// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/nicles7/kudos-app/internal/entities"
	api "github.com/nicles7/kudos-app/internal/oapi"
	"github.com/nicles7/kudos-app/internal/transport/http/middleware"
	"github.com/nicles7/kudos-app/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

var _ api.ServerInterface = (*Handler)(nil)

// Handler implements oapi.ServerInterface using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts the API under BasePath. Every route requires an identity,
// admin routes additionally require the HR role.
func (h *Handler) Register(router fiber.Router) {
	group := router.Group(BasePath, middleware.Identity(h.log, h.uc))
	group.Use("/admin", middleware.RequireRole(entities.RoleHR))
	api.RegisterHandlers(group, h)
}

func currentUser(c *fiber.Ctx) (*entities.User, error) {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, entities.ErrUnauthenticated
	}
	return usr, nil
}
