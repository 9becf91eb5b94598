package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"study-planner-be/internal/repository/implementation"
	"study-planner-be/internal/repository/redisrepo"
	"study-planner-be/pkg/database"
	"study-planner-be/pkg/store"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip exercises the SessionRepository contract against a live backend.
func roundTrip(t *testing.T, repo interface {
	Get(ctx context.Context, id string) (*store.Session, error)
	Save(ctx context.Context, session *store.Session) error
	Delete(ctx context.Context, id string) error
}) {
	t.Helper()
	ctx := context.Background()
	id := "it-" + uuid.NewString()

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	session := store.NewSession(id)
	session.Topics = append(session.Topics, store.Topic{
		ID: "t1", Subject: "Math", Title: "Limits", PageRange: [2]int{1, 20},
		EstimatedHours: 3.5, Complexity: 0.7,
	})
	session.Exams = []store.Exam{{Subject: "Math", ExamDate: "2026-10-01"}}
	require.NoError(t, repo.Save(ctx, session))

	got, err = repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	require.Len(t, got.Topics, 1)
	assert.Equal(t, 3.5, got.Topics[0].EstimatedHours)
	assert.Equal(t, [2]int{1, 20}, got.Topics[0].PageRange)
	require.Len(t, got.Exams, 1)

	// Overwrite and re-read.
	got.Topics = nil
	require.NoError(t, repo.Save(ctx, got))
	got, err = repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Topics)

	require.NoError(t, repo.Delete(ctx, id))
	got, err = repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostgresSessionStore(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("No ../../.env file, using system environment")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	repo, err := implementation.NewSessionRepository(gormDB)
	require.NoError(t, err)

	roundTrip(t, repo)
}

func TestRedisSessionStore(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("No ../../.env file, using system environment")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	repo, err := redisrepo.NewSessionRepository(redisURL, time.Hour)
	require.NoError(t, err)

	roundTrip(t, repo)
}
