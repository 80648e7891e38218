package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/nicles7/kudos-app/config"
	"github.com/nicles7/kudos-app/internal/entities"
	"github.com/nicles7/kudos-app/internal/seed"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	now := time.Now().Truncate(time.Microsecond)
	roster, err := seed.Default(now)
	require.NoError(t, err)
	require.NoError(t, repo.Seed(ctx, roster.Users, roster.Teams, roster.Kudos))
	// second run is a no-op
	require.NoError(t, repo.Seed(ctx, roster.Users, roster.Teams, roster.Kudos))

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, len(roster.Users))
	require.Equal(t, "1", users[0].ID)
	require.Equal(t, entities.RoleTeamLead, users[0].Role)
	require.Nil(t, users[0].ManagerID)

	bob, err := repo.GetUser(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, bob.ManagerID)
	require.Equal(t, "1", *bob.ManagerID)

	_, err = repo.GetUser(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)

	team, err := repo.GetTeam(ctx, "B")
	require.NoError(t, err)
	require.Equal(t, "4", team.LeadID)

	_, err = repo.GetTeam(ctx, "Z")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	ledger, err := repo.ListKudos(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, len(roster.Kudos))
	require.Equal(t, "k1", ledger[0].ID)
	require.True(t, now.Equal(ledger[0].CreatedAt))

	entry := entities.Kudos{
		ID:         "new-1",
		SenderID:   "2",
		ReceiverID: "3",
		Type:       entities.KudosSilver,
		Message:    "thanks",
		CreatedAt:  now,
		Image:      &entities.Image{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"},
	}
	_, err = repo.AppendKudos(ctx, entry)
	require.NoError(t, err)

	_, err = repo.AppendKudos(ctx, entry)
	require.ErrorIs(t, err, entities.ErrKudosExists)

	bad := entry
	bad.ID = "new-2"
	bad.ReceiverID = "ghost"
	_, err = repo.AppendKudos(ctx, bad)
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	ledger, err = repo.ListKudos(ctx)
	require.NoError(t, err)
	last := ledger[len(ledger)-1]
	require.Equal(t, "new-1", last.ID)
	require.NotNil(t, last.Image)
	require.Equal(t, "image/png", last.Image.MIMEType)
	require.Equal(t, entry.Image.Data, last.Image.Data)
	require.Nil(t, ledger[0].Image)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=kudos_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Ledger: config.LedgerConfig{Backend: config.BackendPostgres},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "kudos_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
