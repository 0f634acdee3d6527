package mock

import (
	"context"

	"github.com/fwojciec/cardmill"
)

var _ cardmill.Generator = (*Generator)(nil)

// Generator is a mock implementation of cardmill.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) ([]cardmill.CardCandidate, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) ([]cardmill.CardCandidate, error) {
	return g.GenerateFn(ctx, prompt)
}
