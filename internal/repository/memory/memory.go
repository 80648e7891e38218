// Package memory implements the repository in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/nicles7/kudos-app/internal/entities"

	"go.uber.org/zap"
)

// Memory keeps the roster and the ledger behind a single RWMutex.
// Every value handed out is a copy, so callers never alias stored state.
type Memory struct {
	log *zap.SugaredLogger

	mu        sync.RWMutex
	users     map[string]entities.User
	userOrder []string
	teams     map[string]entities.Team
	teamOrder []string
	kudos     []entities.Kudos
	kudosIDs  map[string]struct{}
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:      log.Named("repo.memory"),
		users:    make(map[string]entities.User),
		teams:    make(map[string]entities.Team),
		kudosIDs: make(map[string]struct{}),
	}
}

// OnStart is a no-op; the store is ready once constructed.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory store ready")
	return nil
}

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}

// Seed inserts users, teams and kudos whose ids are not stored yet.
func (m *Memory) Seed(_ context.Context, users []entities.User, teams []entities.Team, kudos []entities.Kudos) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var addedUsers, addedTeams, addedKudos int
	for _, t := range teams {
		if _, ok := m.teams[t.ID]; ok {
			continue
		}
		m.teams[t.ID] = t
		m.teamOrder = append(m.teamOrder, t.ID)
		addedTeams++
	}
	for _, u := range users {
		if _, ok := m.users[u.ID]; ok {
			continue
		}
		m.users[u.ID] = copyUser(u)
		m.userOrder = append(m.userOrder, u.ID)
		addedUsers++
	}
	for _, k := range kudos {
		if _, ok := m.kudosIDs[k.ID]; ok {
			continue
		}
		m.kudos = append(m.kudos, k.Clone())
		m.kudosIDs[k.ID] = struct{}{}
		addedKudos++
	}

	m.log.Infow("roster seeded", "users", addedUsers, "teams", addedTeams, "kudos", addedKudos)
	return nil
}

func copyUser(u entities.User) entities.User {
	if u.ManagerID != nil {
		id := *u.ManagerID
		u.ManagerID = &id
	}
	return u
}
