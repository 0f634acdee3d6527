package cardmill

import (
	"context"
	"time"
)

// Run records the outcome of one pipeline invocation in the run ledger.
// The ledger is debugging observability only: the pipeline writes it when
// enabled and never reads it back.
type Run struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Extractor  string    `json:"extractor"`
	Blocks     int       `json:"blocks"`
	Images     int       `json:"images"`
	Cards      int       `json:"cards"`
	Published  int       `json:"published"`
	Failed     int       `json:"failed"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "run URL required")
	}
	return nil
}

// RunService persists pipeline runs.
type RunService interface {
	// CreateRun records a completed run. Assigns r.ID if empty.
	CreateRun(ctx context.Context, r *Run) error

	// FindRuns returns recorded runs, most recent first.
	FindRuns(ctx context.Context, limit int) ([]*Run, error)
}
