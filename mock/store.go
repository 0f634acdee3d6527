package mock

import (
	"context"

	"github.com/fwojciec/cardmill"
)

var _ cardmill.Store = (*Store)(nil)

// Store is a mock implementation of cardmill.Store.
type Store struct {
	SaveFn     func(ctx context.Context, doc *cardmill.Document) error
	ImageDirFn func(doc *cardmill.Document) (string, error)
}

func (s *Store) Save(ctx context.Context, doc *cardmill.Document) error {
	return s.SaveFn(ctx, doc)
}

func (s *Store) ImageDir(doc *cardmill.Document) (string, error) {
	if s.ImageDirFn == nil {
		return "", nil
	}
	return s.ImageDirFn(doc)
}
