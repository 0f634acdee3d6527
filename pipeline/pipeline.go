// Package pipeline orchestrates the article to flashcards flow: fetch,
// extract, persist, generate and publish.
package pipeline

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/cardmill"
	"github.com/rs/zerolog"
)

// Options control one pipeline invocation.
type Options struct {
	// Steering is appended to the generation prompt as extra reader
	// instructions.
	Steering string

	// Extended asks the model to reason step by step before writing cards.
	Extended bool

	// Publish sends generated cards to the publisher.
	Publish bool

	// DeckID is the target deck for published cards.
	DeckID string
}

// Result summarizes one pipeline invocation.
type Result struct {
	URL       string
	Document  *cardmill.Document
	Extractor string
	Cards     []cardmill.CardCandidate
	Published int
	Failed    int
	Err       error
}

// Runner wires the pipeline collaborators together. Fetcher, Chain,
// Store and Generator are required; everything else is optional and
// skipped when nil.
type Runner struct {
	Fetcher cardmill.Fetcher
	Chain   cardmill.ExtractorChain
	Store   cardmill.Store

	Generator cardmill.Generator
	Publisher cardmill.Publisher

	// BrowserFetcher, when set, is tried once after the primary fetcher
	// is refused with a 403. Bot checks usually pass a real browser.
	BrowserFetcher cardmill.Fetcher

	// Images downloads article images next to the saved article.
	Images cardmill.ImageFetcher

	// Transcriber handles video URLs instead of the fetch/extract path.
	Transcriber cardmill.Transcriber

	// Runs records finished invocations. Failures to record are logged
	// and never fail the run.
	Runs cardmill.RunService

	// Limiter spaces out fetches per host during batch runs.
	Limiter *HostLimiter

	// RetryDelays overrides the fetch backoff schedule. Tests use short
	// delays; nil selects DefaultRetryDelays.
	RetryDelays []time.Duration

	Logger zerolog.Logger
}

// Run executes the pipeline for a single URL.
func (r *Runner) Run(ctx context.Context, url string, opts Options) *Result {
	started := time.Now().UTC()
	result := &Result{URL: url}

	doc, extractor, err := r.acquire(ctx, url)
	if err != nil {
		result.Err = err
		r.record(ctx, started, result)
		return result
	}
	doc.ScrapedAt = time.Now().UTC()
	doc.ContentHash = doc.ComputeHash()
	result.Document = doc
	result.Extractor = extractor

	if r.Images != nil {
		r.downloadImages(ctx, doc)
	}

	if err := r.Store.Save(ctx, doc); err != nil {
		result.Err = err
		r.record(ctx, started, result)
		return result
	}

	prompt := cardmill.BuildPrompt(doc, opts.Steering, opts.Extended)
	cards, err := r.Generator.Generate(ctx, prompt)
	if err != nil {
		result.Err = err
		r.record(ctx, started, result)
		return result
	}
	result.Cards = cards

	if opts.Publish && r.Publisher != nil {
		r.publish(ctx, result, opts.DeckID)
	}

	r.record(ctx, started, result)
	return result
}

// RunAll executes the pipeline for each URL in order. A failing URL does
// not stop the batch.
func (r *Runner) RunAll(ctx context.Context, urls []string, opts Options) []*Result {
	results := make([]*Result, 0, len(urls))
	for _, url := range urls {
		if ctx.Err() != nil {
			break
		}
		results = append(results, r.Run(ctx, url, opts))
	}
	return results
}

// acquire produces a document for the URL, via transcription for videos
// and fetch plus extraction for everything else.
func (r *Runner) acquire(ctx context.Context, url string) (*cardmill.Document, string, error) {
	if r.Transcriber != nil && r.Transcriber.CanHandle(url) {
		doc, err := r.Transcriber.Transcribe(ctx, url)
		if err != nil {
			return nil, "", err
		}
		return doc, "transcript", nil
	}

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, url); err != nil {
			return nil, "", err
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	logRetry := func(format string, args ...any) {
		r.Logger.Warn().Msgf(format, args...)
	}

	html, err := FetchWithRetryDelays(ctx, url, r.Fetcher.Fetch, logRetry, delays)
	if err != nil && r.BrowserFetcher != nil && cardmill.FetchStatusCode(err) == http.StatusForbidden {
		r.Logger.Info().Str("url", url).Msg("403 from primary fetcher, retrying with browser")
		html, err = r.BrowserFetcher.Fetch(ctx, url)
	}
	if err != nil {
		return nil, "", err
	}

	extraction := r.Chain.Extract(url, html)
	if !extraction.OK() {
		return nil, "", extraction.Err
	}
	return extraction.Document, extraction.Extractor, nil
}

// downloadImages fetches article images into the store's image directory.
// Failed downloads are logged and skipped; the article is still usable
// without them.
func (r *Runner) downloadImages(ctx context.Context, doc *cardmill.Document) {
	if len(doc.Images) == 0 {
		return
	}

	dir, err := r.Store.ImageDir(doc)
	if err != nil {
		r.Logger.Error().Err(err).Msg("create image directory")
		return
	}

	for i := range doc.Images {
		localPath, err := r.Images.Download(ctx, doc.Images[i], dir, i)
		if err != nil {
			r.Logger.Warn().Err(err).Str("url", doc.Images[i].SourceURL).Msg("image download failed")
			continue
		}
		doc.Images[i].LocalPath = localPath
	}
}

// publish sends each card independently so one rejected card does not
// block the rest.
func (r *Runner) publish(ctx context.Context, result *Result, deckID string) {
	for _, card := range result.Cards {
		if err := r.Publisher.CreateCard(ctx, card, deckID, result.URL); err != nil {
			result.Failed++
			r.Logger.Warn().Err(err).Str("front", card.Front).Msg("card publish failed")
			continue
		}
		result.Published++
	}
}

// record writes the run to the ledger when one is configured.
func (r *Runner) record(ctx context.Context, started time.Time, result *Result) {
	if r.Runs == nil {
		return
	}

	run := &cardmill.Run{
		URL:        result.URL,
		Extractor:  result.Extractor,
		Cards:      len(result.Cards),
		Published:  result.Published,
		Failed:     result.Failed,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	if result.Document != nil {
		run.Title = result.Document.Metadata.Title
		run.Blocks = len(result.Document.Blocks)
		run.Images = len(result.Document.Images)
	}
	if result.Err != nil {
		run.Error = result.Err.Error()
	}

	if err := r.Runs.CreateRun(ctx, run); err != nil {
		r.Logger.Error().Err(err).Msg("record run")
	}
}
