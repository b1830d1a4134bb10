package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"task-management-service/config"
	"task-management-service/internal/entities"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, seedDB, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	now := time.Now().UTC().Truncate(time.Microsecond)
	owner := seedUser(t, seedDB, "Alice", "alice@example.com", true)
	member := seedUser(t, seedDB, "Bob", "bob@example.com", false)

	project := entities.NewProject(uuid.New(), "backend", "service rework", owner, now)
	require.NoError(t, repo.InsertProject(ctx, project))

	fetched, err := repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, "backend", fetched.Name)
	require.Equal(t, owner, fetched.OwnerID)

	item := entities.NewWorkItem(uuid.New(), "write migrations", "", now.AddDate(0, 1, 0),
		entities.PriorityHigh, project.ID, member, now)
	require.NoError(t, repo.InsertWorkItem(ctx, item))

	hydrated, err := repo.GetProjectWithWorkItems(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, hydrated.WorkItems, 1)
	require.Equal(t, entities.StatusPending, hydrated.WorkItems[0].Status)

	summaries, err := repo.GetProjectsByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, 1, summaries[0].WorkItemCount)

	if h := item.UpdateStatus(entities.StatusCompleted, owner, now); h != nil {
		require.NoError(t, repo.AddHistory(ctx, *h))
	}
	require.NoError(t, repo.UpdateWorkItem(ctx, item))

	comment, history := item.AddComment("done early", member, now)
	require.NoError(t, repo.AddComment(ctx, *comment))
	require.NoError(t, repo.AddHistory(ctx, *history))

	detailed, err := repo.GetWorkItemWithDetails(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusCompleted, detailed.Status)
	require.Len(t, detailed.Comments, 1)
	require.Equal(t, "done early", detailed.Comments[0].Content)
	// creation + status change + comment
	require.Len(t, detailed.History, 3)

	all, err := repo.AllWorkItems(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	users, err := repo.AllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	fetchedUser, err := repo.GetUser(ctx, owner)
	require.NoError(t, err)
	require.True(t, fetchedUser.IsManager)

	require.NoError(t, repo.DeleteWorkItem(ctx, item.ID))
	_, err = repo.GetWorkItem(ctx, item.ID)
	require.ErrorIs(t, err, entities.ErrWorkItemNotFound)

	require.NoError(t, repo.DeleteProject(ctx, project.ID))
	_, err = repo.GetProject(ctx, project.ID)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

func TestRepositoryNotFoundIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, _, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.GetProject(ctx, uuid.New())
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	_, err = repo.GetProjectWithWorkItems(ctx, uuid.New())
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	_, err = repo.GetWorkItem(ctx, uuid.New())
	require.ErrorIs(t, err, entities.ErrWorkItemNotFound)

	_, err = repo.GetUser(ctx, uuid.New())
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	err = repo.DeleteProject(ctx, uuid.New())
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	err = repo.DeleteWorkItem(ctx, uuid.New())
	require.ErrorIs(t, err, entities.ErrWorkItemNotFound)
}

func TestCascadeDeleteIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, seedDB, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	now := time.Now().UTC().Truncate(time.Microsecond)
	owner := seedUser(t, seedDB, "Alice", "alice2@example.com", true)

	project := entities.NewProject(uuid.New(), "cleanup", "", owner, now)
	require.NoError(t, repo.InsertProject(ctx, project))

	item := entities.NewWorkItem(uuid.New(), "ship", "", now.AddDate(0, 1, 0),
		entities.PriorityLow, project.ID, owner, now)
	require.NoError(t, repo.InsertWorkItem(ctx, item))

	comment, history := item.AddComment("cascades with the project", owner, now)
	require.NoError(t, repo.AddComment(ctx, *comment))
	require.NoError(t, repo.AddHistory(ctx, *history))

	require.NoError(t, repo.DeleteProject(ctx, project.ID))

	_, err := repo.GetWorkItem(ctx, item.ID)
	require.ErrorIs(t, err, entities.ErrWorkItemNotFound)

	var rows int
	require.NoError(t, seedDB.QueryRow(
		"SELECT COUNT(*) FROM work_item_comments WHERE work_item_id = $1", item.ID,
	).Scan(&rows))
	require.Zero(t, rows)
}

func setupPostgres(t *testing.T) (*config.Config, *sql.DB, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=task_management_db",
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
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "task_management_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	var seedDB *sql.DB
	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return err
		}
		seedDB = db
		return nil
	}))

	cleanup := func() {
		_ = seedDB.Close()
		_ = pool.Purge(resource)
	}

	return cfg, seedDB, cleanup
}

func seedUser(t *testing.T, db *sql.DB, name, email string, isManager bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(
		"INSERT INTO users (id, name, email, is_manager) VALUES ($1, $2, $3, $4)",
		id, name, email, isManager,
	)
	require.NoError(t, err)
	return id
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
