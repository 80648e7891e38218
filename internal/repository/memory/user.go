package memory

import (
	"context"

	"github.com/nicles7/kudos-app/internal/entities"
)

// ListUsers returns all users in seed order.
func (m *Memory) ListUsers(_ context.Context) ([]entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.User, 0, len(m.userOrder))
	for _, id := range m.userOrder {
		res = append(res, copyUser(m.users[id]))
	}
	return res, nil
}

// GetUser returns a single user by id.
func (m *Memory) GetUser(_ context.Context, userID string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[userID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	cp := copyUser(u)
	return &cp, nil
}
