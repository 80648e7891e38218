package handlers_fiber

import (
	"net/http"

	"github.com/nicles7/kudos-app/internal/mapper"
	api "github.com/nicles7/kudos-app/internal/oapi"
	"github.com/nicles7/kudos-app/internal/usecase/domain"

	"github.com/gofiber/fiber/v2"
)

const defaultLeaderboardLimit = 10

// GetLeaderboard returns this month's ranking, the employee of the month and recent activity.
func (h *Handler) GetLeaderboard(c *fiber.Ctx, params api.GetLeaderboardParams) error {
	filter := domain.FilterAll
	if params.Team != nil && *params.Team != "" {
		filter = *params.Team
	}
	limit := defaultLeaderboardLimit
	if params.Limit != nil && *params.Limit > 0 {
		limit = *params.Limit
	}

	view, err := h.uc.LeaderboardView(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to build leaderboard", "error", err.Error(), "team", filter)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPILeaderboard(view, limit))
}
