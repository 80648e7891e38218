package postgres

import (
	"context"
	"fmt"

	"github.com/nicles7/kudos-app/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	seedTeamQuery = `INSERT INTO teams(id, name, lead_id) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`
	seedUserQuery = `
INSERT INTO users(id, name, email, role, team_id, manager_id, avatar)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`
	seedKudosQuery = `
INSERT INTO kudos(id, sender_id, receiver_id, type, message, created_at, image_data, image_mime)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`
)

// Seed inserts the roster in one transaction; rows that already exist are left untouched.
func (p *Postgres) Seed(ctx context.Context, users []entities.User, teams []entities.Team, kudos []entities.Kudos) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var addedTeams, addedUsers, addedKudos int64
	for _, t := range teams {
		tag, err := tx.Exec(ctx, seedTeamQuery, t.ID, t.Name, t.LeadID)
		if err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
		addedTeams += tag.RowsAffected()
	}
	for _, u := range users {
		tag, err := tx.Exec(ctx, seedUserQuery, u.ID, u.Name, u.Email, string(u.Role), u.TeamID, u.ManagerID, u.Avatar)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
		addedUsers += tag.RowsAffected()
	}
	for _, k := range kudos {
		tag, err := tx.Exec(ctx, seedKudosQuery, kudosArgs(k)...)
		if err != nil {
			return fmt.Errorf("seed kudos %s: %w", k.ID, err)
		}
		addedKudos += tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("roster seeded", "users", addedUsers, "teams", addedTeams, "kudos", addedKudos)
	return nil
}
