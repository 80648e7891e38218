package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nicles7/kudos-app/internal/entities"
	"github.com/nicles7/kudos-app/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) ListTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) AppendKudos(ctx context.Context, kudos entities.Kudos) (*entities.Kudos, error) {
	args := m.Called(ctx, kudos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Kudos), args.Error(1)
}

func (m *repoMock) ListKudos(ctx context.Context) ([]entities.Kudos, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Kudos), args.Error(1)
}

func (m *repoMock) Seed(ctx context.Context, users []entities.User, teams []entities.Team, kudos []entities.Kudos) error {
	return m.Called(ctx, users, teams, kudos).Error(0)
}

func newMocked(repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second,
		WithClock(func() time.Time { return testNow }), WithLocation(time.UTC))
}

func TestUsecase_IssueKudosInvalidTypeSkipsRepo(t *testing.T) {
	repo := &repoMock{}
	uc := newMocked(repo)

	_, err := uc.IssueKudos(context.Background(), entities.IssueRequest{SenderID: "a", ReceiverID: "b", Message: "hi"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "ListUsers", mock.Anything)
	repo.AssertNotCalled(t, "AppendKudos", mock.Anything, mock.Anything)
}

func TestUsecase_IssueKudosRejectionSkipsAppend(t *testing.T) {
	repo := &repoMock{}
	uc := newMocked(repo)
	users, _ := office()
	repo.On("ListUsers", mock.Anything).Return(users, nil)

	_, err := uc.IssueKudos(context.Background(), silver("A-1", "A-1"))
	require.ErrorIs(t, err, entities.ErrSelfTarget)
	repo.AssertNotCalled(t, "ListKudos", mock.Anything)
	repo.AssertNotCalled(t, "AppendKudos", mock.Anything, mock.Anything)
}

func TestUsecase_IssueKudosDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newMocked(repo)
	users, _ := office()

	repo.On("ListUsers", mock.Anything).Return(users, nil)
	repo.On("ListKudos", mock.Anything).Return([]entities.Kudos{}, nil)
	repo.On("AppendKudos", mock.Anything, mock.MatchedBy(func(k entities.Kudos) bool {
		return k.ID != "" && k.SenderID == "A-lead" && k.ReceiverID == "A-3" &&
			k.Type == entities.KudosGold && k.CreatedAt.Equal(testNow)
	})).Return(&entities.Kudos{ID: "k1", SenderID: "A-lead", ReceiverID: "A-3", Type: entities.KudosGold}, nil)

	created, err := uc.IssueKudos(context.Background(), gold("A-lead", "A-3"))
	require.NoError(t, err)
	require.Equal(t, "A-3", created.ReceiverID)
	repo.AssertExpectations(t)
}

func TestUsecase_RepoErrorsPropagate(t *testing.T) {
	repo := &repoMock{}
	uc := newMocked(repo)
	boom := errors.New("connection reset")
	users, _ := office()

	repo.On("ListUsers", mock.Anything).Return(users, nil)
	repo.On("ListKudos", mock.Anything).Return(nil, boom)

	_, err := uc.IssueKudos(context.Background(), silver("A-1", "A-2"))
	require.ErrorIs(t, err, boom)
	_, ok := entities.RejectionReasonOf(err)
	require.False(t, ok)

	_, err = uc.Limits(context.Background(), "A-1")
	require.ErrorIs(t, err, boom)
	_, err = uc.LeaderboardView(context.Background(), FilterAll)
	require.ErrorIs(t, err, boom)
	_, err = uc.RecentActivity(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestUsecase_TeamGetValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newMocked(repo)

	_, err := uc.Team(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "GetTeam", mock.Anything, mock.Anything)
}

func TestUsecase_UserGetValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newMocked(repo)

	_, err := uc.User(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_UserDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newMocked(repo)

	repo.On("GetUser", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)
	_, err := uc.User(context.Background(), "ghost")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	repo.AssertExpectations(t)
}
