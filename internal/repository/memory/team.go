package memory

import (
	"context"

	"github.com/nicles7/kudos-app/internal/entities"
)

// ListTeams returns all teams in seed order.
func (m *Memory) ListTeams(_ context.Context) ([]entities.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.Team, 0, len(m.teamOrder))
	for _, id := range m.teamOrder {
		res = append(res, m.teams[id])
	}
	return res, nil
}

// GetTeam returns a team by id.
func (m *Memory) GetTeam(_ context.Context, teamID string) (*entities.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	return &t, nil
}
