package handlers_fiber

import (
	"net/http"

	"github.com/nicles7/kudos-app/internal/entities"
	"github.com/nicles7/kudos-app/internal/mapper"
	api "github.com/nicles7/kudos-app/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

type kudosList struct {
	Kudos []api.Kudos `json:"kudos"`
}

// GetKudos returns the whole ledger in insertion order.
func (h *Handler) GetKudos(c *fiber.Ctx) error {
	ledger, err := h.uc.Ledger(c.Context())
	if err != nil {
		h.log.Errorw("failed to list kudos", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(kudosList{Kudos: mapper.ToOAPIKudosList(ledger)})
}

// PostKudos issues kudos from the acting user.
func (h *Handler) PostKudos(c *fiber.Ctx) error {
	usr, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.PostKudosJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	created, err := h.uc.IssueKudos(c.Context(), mapper.FromOAPIKudos(usr.ID, body))
	if err != nil {
		return writeError(c, err)
	}

	limits, err := h.uc.Limits(c.Context(), usr.ID)
	if err != nil {
		h.log.Errorw("failed to get limits", "error", err.Error(), "user_id", usr.ID)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Kudos  api.Kudos  `json:"kudos"`
		Limits api.Limits `json:"limits"`
	}{Kudos: mapper.ToOAPIKudos(*created), Limits: mapper.ToOAPILimits(limits)})
}

// GetKudosReceived returns kudos received by the acting user, newest first.
func (h *Handler) GetKudosReceived(c *fiber.Ctx) error {
	usr, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.KudosReceived(c.Context(), usr.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(kudosList{Kudos: mapper.ToOAPIKudosList(list)})
}

// GetKudosGiven returns kudos sent by the acting user, newest first.
func (h *Handler) GetKudosGiven(c *fiber.Ctx) error {
	usr, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.KudosGiven(c.Context(), usr.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(kudosList{Kudos: mapper.ToOAPIKudosList(list)})
}

// GetKudosRecipients lists who the acting user may send the given kudos type to.
func (h *Handler) GetKudosRecipients(c *fiber.Ctx, params api.GetKudosRecipientsParams) error {
	usr, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}
	users, err := h.uc.RecipientOptions(c.Context(), usr.ID, entities.KudosType(params.Type))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Type  string     `json:"type"`
		Users []api.User `json:"users"`
	}{Type: params.Type, Users: mapper.ToOAPIUserList(users)})
}
