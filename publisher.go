package cardmill

import "context"

// Deck is a named collection in the flashcard service.
type Deck struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Publisher sends accepted card candidates to the external flashcard
// service. Per-card failures are reported by the caller and never roll back
// previously created cards; partial success is the accepted outcome.
type Publisher interface {
	// CreateCard files one card into the deck. The source URL is
	// appended to the card content so reviews link back to the article.
	CreateCard(ctx context.Context, card CardCandidate, deckID string, sourceURL string) error

	// ListDecks returns the decks available to the authenticated account.
	ListDecks(ctx context.Context) ([]Deck, error)
}
