package mock

import (
	"context"

	"github.com/fwojciec/cardmill"
)

var _ cardmill.Transcriber = (*Transcriber)(nil)

// Transcriber is a mock implementation of cardmill.Transcriber.
type Transcriber struct {
	CanHandleFn  func(url string) bool
	TranscribeFn func(ctx context.Context, url string) (*cardmill.Document, error)
}

func (t *Transcriber) CanHandle(url string) bool {
	if t.CanHandleFn == nil {
		return false
	}
	return t.CanHandleFn(url)
}

func (t *Transcriber) Transcribe(ctx context.Context, url string) (*cardmill.Document, error) {
	return t.TranscribeFn(ctx, url)
}
