package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicles7/kudos-app/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listTeamsQuery = `SELECT id, name, lead_id FROM teams ORDER BY id`
	getTeamQuery   = `SELECT id, name, lead_id FROM teams WHERE id = $1`
)

// ListTeams returns all teams ordered by id.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.LeadID); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return teams, nil
}

// GetTeam fetches a team by id.
func (p *Postgres) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	var t entities.Team
	if err := p.db.QueryRow(ctx, getTeamQuery, teamID).Scan(&t.ID, &t.Name, &t.LeadID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}
