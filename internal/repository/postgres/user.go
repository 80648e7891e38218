package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicles7/kudos-app/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listUsersQuery = `SELECT id, name, email, role, team_id, manager_id, avatar FROM users ORDER BY seq`
	getUserQuery   = `SELECT id, name, email, role, team_id, manager_id, avatar FROM users WHERE id = $1`
)

// ListUsers returns the roster in seed order.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user.
func (p *Postgres) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, getUserQuery, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func scanUser(row pgx.Row) (entities.User, error) {
	var u entities.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.TeamID, &u.ManagerID, &u.Avatar); err != nil {
		return entities.User{}, err
	}
	u.Role = entities.Role(role)
	return u, nil
}
