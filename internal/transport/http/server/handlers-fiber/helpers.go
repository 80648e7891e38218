package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/nicles7/kudos-app/internal/entities"
	api "github.com/nicles7/kudos-app/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	var rejection *entities.RejectionError
	switch {
	case errors.As(err, &rejection):
		status = http.StatusUnprocessableEntity
		code = api.ErrorResponseErrorCode(rejection.Reason)
		msg = rejection.Error()
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrKudosExists):
		status = http.StatusConflict
		code = api.KUDOSEXISTS
		msg = "kudos id already exists"
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = api.UNAUTHENTICATED
		msg = "unauthenticated"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "forbidden"
	case errors.Is(err, entities.ErrGenerationDisabled):
		status = http.StatusServiceUnavailable
		code = api.GENERATIONDISABLED
		msg = "generation is not configured"
	case errors.Is(err, entities.ErrGenerationFailed):
		status = http.StatusBadGateway
		code = api.GENERATIONFAILED
		msg = "generation failed, please try again"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
