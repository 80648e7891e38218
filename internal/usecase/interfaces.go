package usecase

import (
	"context"

	"github.com/nicles7/kudos-app/internal/entities"
)

// UserUsecaseInterface abstracts roster reads for delivery layer.
type UserUsecaseInterface interface {
	Users(ctx context.Context) ([]entities.User, error)
	User(ctx context.Context, userID string) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team reads and membership resolution.
type TeamUsecaseInterface interface {
	Teams(ctx context.Context) ([]entities.Team, error)
	Team(ctx context.Context, teamID string) (*entities.Team, error)
	DirectReports(ctx context.Context, leadID string) ([]entities.User, error)
}

// KudosUsecaseInterface abstracts the ledger and the issuance gate.
type KudosUsecaseInterface interface {
	Ledger(ctx context.Context) ([]entities.Kudos, error)
	IssueKudos(ctx context.Context, req entities.IssueRequest) (*entities.Kudos, error)
	Limits(ctx context.Context, userID string) (entities.Limits, error)
	KudosReceived(ctx context.Context, userID string) ([]entities.Kudos, error)
	KudosGiven(ctx context.Context, userID string) ([]entities.Kudos, error)
	RecipientOptions(ctx context.Context, senderID string, kudosType entities.KudosType) ([]entities.User, error)
}

// StatsUsecaseInterface abstracts leaderboard and dashboard aggregation.
type StatsUsecaseInterface interface {
	Leaderboard(ctx context.Context, filter string) ([]entities.LeaderboardEntry, error)
	EmployeeOfTheMonth(ctx context.Context) (*entities.LeaderboardEntry, error)
	RecentActivity(ctx context.Context) ([]entities.Kudos, error)
	LeaderboardView(ctx context.Context, filter string) (entities.LeaderboardView, error)
	Dashboard(ctx context.Context) (entities.Dashboard, error)
}

// AssistUsecaseInterface abstracts the generative helpers used while composing kudos.
type AssistUsecaseInterface interface {
	SuggestMessage(ctx context.Context, senderID, receiverID, seed string) (string, error)
	GenerateImage(ctx context.Context, senderID, receiverID, message string) (*entities.Image, error)
	ReviseImage(ctx context.Context, prior *entities.Image, instruction string) (*entities.Image, error)
}
