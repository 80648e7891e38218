package oapi

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /me)
	GetMe(c *fiber.Ctx) error
	// (GET /users)
	GetUsers(c *fiber.Ctx) error
	// (GET /users/{user_id})
	GetUsersUserId(c *fiber.Ctx, userID string) error
	// (GET /teams)
	GetTeams(c *fiber.Ctx) error
	// (GET /teams/{team_id})
	GetTeamsTeamId(c *fiber.Ctx, teamID string) error
	// (GET /teams/{team_id}/reports)
	GetTeamsTeamIdReports(c *fiber.Ctx, teamID string) error
	// (GET /kudos)
	GetKudos(c *fiber.Ctx) error
	// (POST /kudos)
	PostKudos(c *fiber.Ctx) error
	// (GET /kudos/received)
	GetKudosReceived(c *fiber.Ctx) error
	// (GET /kudos/given)
	GetKudosGiven(c *fiber.Ctx) error
	// (GET /kudos/recipients)
	GetKudosRecipients(c *fiber.Ctx, params GetKudosRecipientsParams) error
	// (GET /limits/{user_id})
	GetLimitsUserId(c *fiber.Ctx, userID string) error
	// (GET /leaderboard)
	GetLeaderboard(c *fiber.Ctx, params GetLeaderboardParams) error
	// (POST /assist/message)
	PostAssistMessage(c *fiber.Ctx) error
	// (POST /assist/image)
	PostAssistImage(c *fiber.Ctx) error
	// (POST /assist/image/revise)
	PostAssistImageRevise(c *fiber.Ctx) error
	// (GET /admin/dashboard)
	GetAdminDashboard(c *fiber.Ctx) error
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []fiber.Handler
}

// RegisterHandlers creates http.Handler with routing matching the API.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	w := &serverInterfaceWrapper{handler: si}

	group := router.Group(options.BaseURL)
	for _, m := range options.Middlewares {
		group.Use(m)
	}

	group.Get("/me", si.GetMe)
	group.Get("/users", si.GetUsers)
	group.Get("/users/:user_id", w.getUsersUserId)
	group.Get("/teams", si.GetTeams)
	group.Get("/teams/:team_id", w.getTeamsTeamId)
	group.Get("/teams/:team_id/reports", w.getTeamsTeamIdReports)
	group.Get("/kudos", si.GetKudos)
	group.Post("/kudos", si.PostKudos)
	group.Get("/kudos/received", si.GetKudosReceived)
	group.Get("/kudos/given", si.GetKudosGiven)
	group.Get("/kudos/recipients", w.getKudosRecipients)
	group.Get("/limits/:user_id", w.getLimitsUserId)
	group.Get("/leaderboard", w.getLeaderboard)
	group.Post("/assist/message", si.PostAssistMessage)
	group.Post("/assist/image", si.PostAssistImage)
	group.Post("/assist/image/revise", si.PostAssistImageRevise)
	group.Get("/admin/dashboard", si.GetAdminDashboard)
}

// serverInterfaceWrapper converts path and query parameters before calling the handler.
type serverInterfaceWrapper struct {
	handler ServerInterface
}

func (w *serverInterfaceWrapper) getUsersUserId(c *fiber.Ctx) error {
	return w.handler.GetUsersUserId(c, c.Params("user_id"))
}

func (w *serverInterfaceWrapper) getTeamsTeamId(c *fiber.Ctx) error {
	return w.handler.GetTeamsTeamId(c, c.Params("team_id"))
}

func (w *serverInterfaceWrapper) getTeamsTeamIdReports(c *fiber.Ctx) error {
	return w.handler.GetTeamsTeamIdReports(c, c.Params("team_id"))
}

func (w *serverInterfaceWrapper) getLimitsUserId(c *fiber.Ctx) error {
	return w.handler.GetLimitsUserId(c, c.Params("user_id"))
}

func (w *serverInterfaceWrapper) getKudosRecipients(c *fiber.Ctx) error {
	params := GetKudosRecipientsParams{Type: c.Query("type")}
	if params.Type == "" {
		return badParam(c, "query parameter type is required")
	}
	return w.handler.GetKudosRecipients(c, params)
}

func (w *serverInterfaceWrapper) getLeaderboard(c *fiber.Ctx) error {
	var params GetLeaderboardParams
	if team := c.Query("team"); team != "" {
		params.Team = &team
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return badParam(c, "invalid format for parameter limit")
		}
		params.Limit = &limit
	}
	return w.handler.GetLeaderboard(c, params)
}

func badParam(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: ErrorBody{Code: INVALIDARGUMENT, Message: msg}})
}
