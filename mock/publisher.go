package mock

import (
	"context"

	"github.com/fwojciec/cardmill"
)

var _ cardmill.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of cardmill.Publisher.
type Publisher struct {
	CreateCardFn func(ctx context.Context, card cardmill.CardCandidate, deckID string, sourceURL string) error
	ListDecksFn  func(ctx context.Context) ([]cardmill.Deck, error)
}

func (p *Publisher) CreateCard(ctx context.Context, card cardmill.CardCandidate, deckID string, sourceURL string) error {
	return p.CreateCardFn(ctx, card, deckID, sourceURL)
}

func (p *Publisher) ListDecks(ctx context.Context) ([]cardmill.Deck, error) {
	return p.ListDecksFn(ctx)
}
