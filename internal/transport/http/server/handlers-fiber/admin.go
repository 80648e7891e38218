package handlers_fiber

import (
	"net/http"

	"github.com/nicles7/kudos-app/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetAdminDashboard returns the HR overview of the current month.
func (h *Handler) GetAdminDashboard(c *fiber.Ctx) error {
	d, err := h.uc.Dashboard(c.Context())
	if err != nil {
		h.log.Errorw("failed to build dashboard", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIDashboard(d))
}
