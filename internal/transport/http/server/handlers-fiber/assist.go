package handlers_fiber

import (
	"net/http"

	"github.com/nicles7/kudos-app/internal/mapper"
	api "github.com/nicles7/kudos-app/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostAssistMessage suggests a kudos message for the selected recipient.
func (h *Handler) PostAssistMessage(c *fiber.Ctx) error {
	usr, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.PostAssistMessageJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	text, err := h.uc.SuggestMessage(c.Context(), usr.ID, body.ReceiverId, body.Seed)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.SuggestedMessage{Message: text})
}

// PostAssistImage renders a certificate image for a drafted kudos.
func (h *Handler) PostAssistImage(c *fiber.Ctx) error {
	usr, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.PostAssistImageJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	img, err := h.uc.GenerateImage(c.Context(), usr.ID, body.ReceiverId, body.Message)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIImage(img))
}

// PostAssistImageRevise applies a correction to a previously generated image.
func (h *Handler) PostAssistImageRevise(c *fiber.Ctx) error {
	var body api.PostAssistImageReviseJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	img, err := h.uc.ReviseImage(c.Context(), mapper.FromOAPIImage(&body.Image), body.Instruction)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIImage(img))
}
