// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/nicles7/kudos-app/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes read access to the user roster.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, userID string) (*entities.User, error)
}

// TeamInterface exposes read access to teams.
type TeamInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (*entities.Team, error)
}

// KudosInterface exposes the append-only ledger.
type KudosInterface interface {
	// AppendKudos stores a fully stamped entry. Entries are never updated or removed.
	AppendKudos(ctx context.Context, kudos entities.Kudos) (*entities.Kudos, error)
	// ListKudos returns a snapshot of the ledger in insertion order.
	ListKudos(ctx context.Context) ([]entities.Kudos, error)
}

// SeedInterface loads the initial roster into an empty store.
type SeedInterface interface {
	Seed(ctx context.Context, users []entities.User, teams []entities.Team, kudos []entities.Kudos) error
}
