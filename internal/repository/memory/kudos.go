package memory

import (
	"context"
	"fmt"

	"github.com/nicles7/kudos-app/internal/entities"
)

// AppendKudos adds an entry to the end of the ledger.
func (m *Memory) AppendKudos(_ context.Context, kudos entities.Kudos) (*entities.Kudos, error) {
	if kudos.ID == "" {
		return nil, fmt.Errorf("%w: kudos id is required", entities.ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.kudosIDs[kudos.ID]; ok {
		return nil, entities.ErrKudosExists
	}
	stored := kudos.Clone()
	m.kudos = append(m.kudos, stored)
	m.kudosIDs[stored.ID] = struct{}{}

	m.log.Debugw("kudos appended", "kudos_id", stored.ID, "ledger_size", len(m.kudos))
	res := stored.Clone()
	return &res, nil
}

// ListKudos returns a copy of the ledger in insertion order.
func (m *Memory) ListKudos(_ context.Context) ([]entities.Kudos, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.Kudos, 0, len(m.kudos))
	for _, k := range m.kudos {
		res = append(res, k.Clone())
	}
	return res, nil
}
