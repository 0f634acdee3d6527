// Package zerolog provides logging decorators for pipeline collaborators.
package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/cardmill"
	"github.com/rs/zerolog"
)

// Ensure decorators implement their interfaces at compile time.
var (
	_ cardmill.ExtractorChain = (*LoggingChain)(nil)
	_ cardmill.Fetcher        = (*LoggingFetcher)(nil)
)

// LoggingChain wraps an ExtractorChain and logs which extractor handled
// each URL.
type LoggingChain struct {
	next   cardmill.ExtractorChain
	logger zerolog.Logger
}

// NewLoggingChain creates a new LoggingChain.
func NewLoggingChain(next cardmill.ExtractorChain, logger zerolog.Logger) *LoggingChain {
	return &LoggingChain{next: next, logger: logger}
}

// Extract delegates to the wrapped chain and logs the outcome.
func (c *LoggingChain) Extract(url, html string) *cardmill.ExtractionResult {
	begin := time.Now()
	result := c.next.Extract(url, html)

	event := c.logger.Info()
	if result.Err != nil {
		event = c.logger.Error().Err(result.Err)
	}
	event.
		Str("url", url).
		Str("extractor", result.Extractor).
		Dur("duration", time.Since(begin))
	if result.OK() {
		event = event.
			Int("blocks", len(result.Document.Blocks)).
			Int("images", len(result.Document.Images))
	}
	event.Msg("content extraction")

	return result
}

// LoggingFetcher wraps a Fetcher and logs each fetch.
type LoggingFetcher struct {
	next   cardmill.Fetcher
	logger zerolog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next cardmill.Fetcher, logger zerolog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)

	event := f.logger.Info()
	if err != nil {
		event = f.logger.Error().Err(err)
		if status := cardmill.FetchStatusCode(err); status != 0 {
			event = event.Int("status", status)
		}
	}
	event.
		Str("url", url).
		Int("bytes", len(html)).
		Dur("duration", time.Since(begin)).
		Msg("page fetch")

	return html, err
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
