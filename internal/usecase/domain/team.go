// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"

	"github.com/nicles7/kudos-app/internal/entities"
)

func findUser(users []entities.User, id string) (entities.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return entities.User{}, false
}

// directReportsOf filters the roster on every call; membership is never stored.
func directReportsOf(users []entities.User, leadID string) []entities.User {
	lead, ok := findUser(users, leadID)
	if !ok || lead.Role != entities.RoleTeamLead {
		return []entities.User{}
	}
	res := make([]entities.User, 0)
	for _, u := range users {
		if u.TeamID == lead.TeamID && u.ID != lead.ID {
			res = append(res, u)
		}
	}
	return res
}

func isDirectReport(users []entities.User, leadID, userID string) bool {
	for _, r := range directReportsOf(users, leadID) {
		if r.ID == userID {
			return true
		}
	}
	return false
}

// Teams returns all teams.
func (u *Usecase) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTeams(ctx)
}

// Team returns team by id.
func (u *Usecase) Team(ctx context.Context, teamID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		u.log.Errorw("failed to get team: missing team_id")
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, teamID)
}

// DirectReports returns the members of the lead's team, excluding the lead.
// It is empty when leadID is unknown or not a team lead.
func (u *Usecase) DirectReports(ctx context.Context, leadID string) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return directReportsOf(users, leadID), nil
}
