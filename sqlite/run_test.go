package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/cardmill"
	"github.com/fwojciec/cardmill/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and persists run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(openTestDB(t))
		ctx := context.Background()

		run := &cardmill.Run{
			URL:        "https://example.com/wal",
			Title:      "Write-Ahead Logging",
			Extractor:  "trafilatura",
			Blocks:     12,
			Images:     2,
			Cards:      10,
			Published:  9,
			Failed:     1,
			StartedAt:  time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
			FinishedAt: time.Date(2024, 3, 12, 10, 0, 42, 0, time.UTC),
		}
		require.NoError(t, svc.CreateRun(ctx, run))
		assert.NotEmpty(t, run.ID)

		runs, err := svc.FindRuns(ctx, 0)
		require.NoError(t, err)
		require.Len(t, runs, 1)

		got := runs[0]
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, "Write-Ahead Logging", got.Title)
		assert.Equal(t, "trafilatura", got.Extractor)
		assert.Equal(t, 10, got.Cards)
		assert.Equal(t, 9, got.Published)
		assert.Equal(t, 1, got.Failed)
		assert.True(t, got.StartedAt.Equal(run.StartedAt))
	})

	t.Run("rejects run without URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(openTestDB(t))
		err := svc.CreateRun(context.Background(), &cardmill.Run{})

		require.Error(t, err)
		assert.Equal(t, cardmill.EINVALID, cardmill.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewRunService(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := &cardmill.Run{
			URL:        "https://example.com/post",
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Minute),
		}
		require.NoError(t, svc.CreateRun(ctx, run))
	}

	t.Run("most recent first", func(t *testing.T) {
		runs, err := svc.FindRuns(ctx, 0)
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
		assert.True(t, runs[1].StartedAt.After(runs[2].StartedAt))
	})

	t.Run("respects limit", func(t *testing.T) {
		runs, err := svc.FindRuns(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}
