package mock

import (
	"context"

	"github.com/fwojciec/cardmill"
)

var _ cardmill.RunService = (*RunService)(nil)

// RunService is a mock implementation of cardmill.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, r *cardmill.Run) error
	FindRunsFn  func(ctx context.Context, limit int) ([]*cardmill.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, r *cardmill.Run) error {
	return s.CreateRunFn(ctx, r)
}

func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*cardmill.Run, error) {
	return s.FindRunsFn(ctx, limit)
}
