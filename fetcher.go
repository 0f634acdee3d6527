package cardmill

import (
	"context"
	"errors"
	"fmt"
)

// Fetcher retrieves raw HTML from URLs.
// Implementations may use plain HTTP or browser automation.
type Fetcher interface {
	// Fetch retrieves the markup at url.
	// The context controls timeout and cancellation.
	// Non-2xx responses return a *FetchError carrying the status code.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// FetchError describes an HTTP-level fetch failure.
// A zero StatusCode means the request never produced a response
// (timeout, DNS failure, connection refused).
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error, if any.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetchStatusCode returns the HTTP status code carried by err, or 0 when err
// is not a *FetchError or no response was received.
func FetchStatusCode(err error) int {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.StatusCode
	}
	return 0
}

// ImageFetcher downloads article images to local files.
type ImageFetcher interface {
	// Download retrieves the image and writes it into dir.
	// Returns the path of the written file.
	Download(ctx context.Context, img Image, dir string, index int) (string, error)
}
