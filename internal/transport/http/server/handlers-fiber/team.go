package handlers_fiber

import (
	"net/http"

	"github.com/nicles7/kudos-app/internal/mapper"
	api "github.com/nicles7/kudos-app/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetTeams returns all teams.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context())
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Teams []api.Team `json:"teams"`
	}{Teams: mapper.ToOAPITeamList(teams)})
}

// GetTeamsTeamId returns team by id.
func (h *Handler) GetTeamsTeamId(c *fiber.Ctx, teamID string) error {
	team, err := h.uc.Team(c.Context(), teamID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITeam(*team))
}

// GetTeamsTeamIdReports returns the direct reports of the team's lead.
func (h *Handler) GetTeamsTeamIdReports(c *fiber.Ctx, teamID string) error {
	team, err := h.uc.Team(c.Context(), teamID)
	if err != nil {
		return writeError(c, err)
	}
	reports, err := h.uc.DirectReports(c.Context(), team.LeadID)
	if err != nil {
		h.log.Errorw("failed to get direct reports", "error", err.Error(), "team_id", teamID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		TeamID  string     `json:"team_id"`
		LeadID  string     `json:"lead_id"`
		Reports []api.User `json:"reports"`
	}{TeamID: team.ID, LeadID: team.LeadID, Reports: mapper.ToOAPIUserList(reports)})
}
