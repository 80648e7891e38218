package handlers_fiber

import (
	"net/http"

	"github.com/nicles7/kudos-app/internal/mapper"
	api "github.com/nicles7/kudos-app/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetMe returns the acting user together with their monthly quota.
func (h *Handler) GetMe(c *fiber.Ctx) error {
	usr, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}
	limits, err := h.uc.Limits(c.Context(), usr.ID)
	if err != nil {
		h.log.Errorw("failed to get limits", "error", err.Error(), "user_id", usr.ID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.Me{
		User:   mapper.ToOAPIUser(*usr),
		Limits: mapper.ToOAPILimits(limits),
	})
}

// GetUsers returns the roster.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Users []api.User `json:"users"`
	}{Users: mapper.ToOAPIUserList(users)})
}

// GetUsersUserId returns a single user.
func (h *Handler) GetUsersUserId(c *fiber.Ctx, userID string) error {
	usr, err := h.uc.User(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIUser(*usr))
}

// GetLimitsUserId returns the monthly quota of any user.
func (h *Handler) GetLimitsUserId(c *fiber.Ctx, userID string) error {
	limits, err := h.uc.Limits(c.Context(), userID)
	if err != nil {
		h.log.Errorw("failed to get limits", "error", err.Error(), "user_id", userID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPILimits(limits))
}
