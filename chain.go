package cardmill

// ExtractorChain is the strategy-selection surface the pipeline consumes.
// Chain is the canonical implementation; decorators (e.g. logging) wrap it.
type ExtractorChain interface {
	Extract(url string, html string) *ExtractionResult
}

// Ensure Chain implements ExtractorChain at compile time.
var _ ExtractorChain = (*Chain)(nil)

// Chain selects an extraction strategy for a URL. Site-specific extractors
// are consulted in registration order; the first whose CanHandle matches
// wins. When none match, the generic fallback runs. The fallback is never
// consulted via CanHandle and runs at most once per Extract call.
type Chain struct {
	extractors []Extractor
	fallback   Extractor
}

// NewChain creates a Chain with the given fallback extractor.
func NewChain(fallback Extractor, extractors ...Extractor) *Chain {
	return &Chain{
		extractors: extractors,
		fallback:   fallback,
	}
}

// Register appends a site-specific extractor to the chain.
// Order matters: more specific extractors should be registered first.
func (c *Chain) Register(e Extractor) {
	c.extractors = append(c.extractors, e)
}

// Select returns the extractor that will handle url.
func (c *Chain) Select(url string) Extractor {
	for _, e := range c.extractors {
		if e.CanHandle(url) {
			return e
		}
	}
	return c.fallback
}

// Extract runs the selected strategy and wraps its outcome.
func (c *Chain) Extract(url string, html string) *ExtractionResult {
	e := c.Select(url)
	if e == nil {
		return &ExtractionResult{
			Err: Errorf(EINTERNAL, "no extractor available for %s", url),
		}
	}

	doc, err := e.Extract(url, html)
	result := &ExtractionResult{
		Document:  doc,
		Extractor: e.Name(),
		Err:       err,
	}
	if err == nil {
		if verr := doc.Validate(); verr != nil {
			result.Document = nil
			result.Err = verr
		}
	}
	return result
}

// Extractors returns the registered site-specific extractors in order.
func (c *Chain) Extractors() []Extractor {
	return c.extractors
}
