package mock

import "github.com/fwojciec/cardmill"

var _ cardmill.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cardmill.Extractor.
type Extractor struct {
	NameFn      func() string
	CanHandleFn func(url string) bool
	ExtractFn   func(url string, html string) (*cardmill.Document, error)
}

func (e *Extractor) Name() string {
	if e.NameFn == nil {
		return "mock"
	}
	return e.NameFn()
}

func (e *Extractor) CanHandle(url string) bool {
	if e.CanHandleFn == nil {
		return false
	}
	return e.CanHandleFn(url)
}

func (e *Extractor) Extract(url string, html string) (*cardmill.Document, error) {
	return e.ExtractFn(url, html)
}

var _ cardmill.Converter = (*Converter)(nil)

// Converter is a mock implementation of cardmill.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ cardmill.ExtractorChain = (*ExtractorChain)(nil)

// ExtractorChain is a mock implementation of cardmill.ExtractorChain.
type ExtractorChain struct {
	ExtractFn func(url string, html string) *cardmill.ExtractionResult
}

func (c *ExtractorChain) Extract(url string, html string) *cardmill.ExtractionResult {
	return c.ExtractFn(url, html)
}
