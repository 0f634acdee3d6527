package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/cardmill"
	"github.com/fwojciec/cardmill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists recent runs", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		var gotLimit int
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, limit int) ([]*cardmill.Run, error) {
					gotLimit = limit
					return []*cardmill.Run{
						{
							URL:       "https://example.com/wal",
							Title:     "Write-Ahead Logging",
							Cards:     10,
							Published: 10,
							StartedAt: time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
						},
						{
							URL:       "https://example.com/broken",
							Error:     "no post content found",
							StartedAt: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
						},
					}, nil
				},
			},
		}

		require.NoError(t, (&HistoryCmd{Limit: 20}).Run(deps))

		assert.Equal(t, 20, gotLimit)
		out := stdout.String()
		assert.Contains(t, out, "Write-Ahead Logging")
		assert.Contains(t, out, "cards=10")
		// Failed runs fall back to the URL and show the error.
		assert.Contains(t, out, "https://example.com/broken")
		assert.Contains(t, out, "no post content found")
	})

	t.Run("no runs recorded", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, _ int) ([]*cardmill.Run, error) {
					return nil, nil
				},
			},
		}

		require.NoError(t, (&HistoryCmd{Limit: 20}).Run(deps))
		assert.Contains(t, stdout.String(), "No runs recorded.")
	})
}
