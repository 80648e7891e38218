package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nicles7/kudos-app/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeeded(t *testing.T) *Memory {
	t.Helper()

	m := New(zap.NewNop().Sugar())
	require.NoError(t, m.OnStart(context.Background()))
	mgr := "1"
	require.NoError(t, m.Seed(context.Background(),
		[]entities.User{
			{ID: "1", Name: "Alice", Role: entities.RoleTeamLead, TeamID: "A"},
			{ID: "2", Name: "Bob", Role: entities.RoleEmployee, TeamID: "A", ManagerID: &mgr},
		},
		[]entities.Team{{ID: "A", Name: "Alpha", LeadID: "1"}},
		[]entities.Kudos{{ID: "k0", SenderID: "2", ReceiverID: "1", Type: entities.KudosSilver, Message: "hi"}},
	))
	return m
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := newSeeded(t)

	require.NoError(t, m.Seed(ctx,
		[]entities.User{{ID: "1", Name: "Renamed"}},
		[]entities.Team{{ID: "A", Name: "Renamed"}},
		[]entities.Kudos{{ID: "k0", Message: "dup"}},
	))

	users, err := m.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "Alice", users[0].Name)

	team, err := m.GetTeam(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, "Alpha", team.Name)

	ledger, err := m.ListKudos(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	require.Equal(t, "hi", ledger[0].Message)
}

func TestGetUnknown(t *testing.T) {
	ctx := context.Background()
	m := newSeeded(t)

	_, err := m.GetUser(ctx, "nope")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	_, err = m.GetTeam(ctx, "nope")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestAppendKudosKeepsOrderAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	m := newSeeded(t)

	_, err := m.AppendKudos(ctx, entities.Kudos{ID: "k1", SenderID: "1", ReceiverID: "2", Type: entities.KudosGold, Message: "a", CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = m.AppendKudos(ctx, entities.Kudos{ID: "k1"})
	require.ErrorIs(t, err, entities.ErrKudosExists)
	_, err = m.AppendKudos(ctx, entities.Kudos{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	ledger, err := m.ListKudos(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	require.Equal(t, "k0", ledger[0].ID)
	require.Equal(t, "k1", ledger[1].ID)
}

func TestSnapshotsDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	m := newSeeded(t)

	img := &entities.Image{Data: []byte("png"), MIMEType: "image/png"}
	created, err := m.AppendKudos(ctx, entities.Kudos{ID: "k1", SenderID: "1", ReceiverID: "2", Message: "a", Image: img})
	require.NoError(t, err)
	created.Image.Data[0] = 'X'
	img.Data[1] = 'Y'

	ledger, err := m.ListKudos(ctx)
	require.NoError(t, err)
	ledger[0].Message = "mutated"
	require.Equal(t, []byte("png"), ledger[1].Image.Data)

	again, err := m.ListKudos(ctx)
	require.NoError(t, err)
	require.Equal(t, "hi", again[0].Message)

	u, err := m.GetUser(ctx, "2")
	require.NoError(t, err)
	*u.ManagerID = "9"
	u2, err := m.GetUser(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, "1", *u2.ManagerID)
}

func TestConcurrentAppendAndRead(t *testing.T) {
	ctx := context.Background()
	m := newSeeded(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := m.AppendKudos(ctx, entities.Kudos{ID: fmt.Sprintf("c%d", i), Message: "m"})
			require.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			_, err := m.ListKudos(ctx)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	ledger, err := m.ListKudos(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 51)
}
