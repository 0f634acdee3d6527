package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/cardmill"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cardmill.RunService = (*RunService)(nil)

// RunService implements cardmill.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a completed run.
func (s *RunService) CreateRun(ctx context.Context, r *cardmill.Run) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, url, title, extractor, blocks, images, cards, published, failed, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.URL, r.Title, r.Extractor, r.Blocks, r.Images, r.Cards, r.Published, r.Failed, r.Error,
		r.StartedAt.UTC().Format(time.RFC3339), r.FinishedAt.UTC().Format(time.RFC3339))

	return err
}

// FindRuns returns recorded runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*cardmill.Run, error) {
	query := `
		SELECT id, url, title, extractor, blocks, images, cards, published, failed, error, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*cardmill.Run
	for rows.Next() {
		var r cardmill.Run
		var startedAt, finishedAt string
		if err := rows.Scan(&r.ID, &r.URL, &r.Title, &r.Extractor, &r.Blocks, &r.Images, &r.Cards,
			&r.Published, &r.Failed, &r.Error, &startedAt, &finishedAt); err != nil {
			return nil, err
		}
		if r.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if r.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
