package mock

import (
	"context"

	"github.com/fwojciec/cardmill"
)

var _ cardmill.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cardmill.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ cardmill.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher is a mock implementation of cardmill.ImageFetcher.
type ImageFetcher struct {
	DownloadFn func(ctx context.Context, img cardmill.Image, dir string, index int) (string, error)
}

func (f *ImageFetcher) Download(ctx context.Context, img cardmill.Image, dir string, index int) (string, error) {
	return f.DownloadFn(ctx, img, dir, index)
}
