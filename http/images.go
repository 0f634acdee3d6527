package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/fwojciec/cardmill"
)

// Ensure ImageFetcher implements cardmill.ImageFetcher at compile time.
var _ cardmill.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher downloads article images over HTTP.
type ImageFetcher struct {
	client    *http.Client
	userAgent string
}

// ImageOption configures an ImageFetcher.
type ImageOption func(*ImageFetcher)

// WithImageTimeout sets the per-download timeout.
func WithImageTimeout(d time.Duration) ImageOption {
	return func(f *ImageFetcher) {
		f.client.Timeout = d
	}
}

// NewImageFetcher creates a new ImageFetcher.
func NewImageFetcher(opts ...ImageOption) *ImageFetcher {
	f := &ImageFetcher{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Download retrieves the image and writes it into dir as
// image_<index>.<ext>. Returns the path of the written file.
func (f *ImageFetcher) Download(ctx context.Context, img cardmill.Image, dir string, index int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, img.SourceURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &cardmill.FetchError{URL: img.SourceURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &cardmill.FetchError{URL: img.SourceURL, StatusCode: resp.StatusCode}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("image_%03d%s", index, imageExt(img.SourceURL))
	dest := filepath.Join(dir, filename)

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(dest)
		return "", err
	}

	return dest, nil
}

// imageExt derives a file extension from the image URL path.
// Defaults to .jpg when the URL carries none or a nonsensical one.
func imageExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".jpg"
	}
	ext := path.Ext(u.Path)
	if ext == "" || len(ext) > 5 {
		return ".jpg"
	}
	return ext
}
