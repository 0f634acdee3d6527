// Package readability provides an alternative generic extractor built on
// go-readability, selectable in place of the trafilatura default.
package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardmill"
	cmgoquery "github.com/fwojciec/cardmill/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements cardmill.Extractor at compile time.
var _ cardmill.Extractor = (*Extractor)(nil)

// Extractor extracts main content from arbitrary article pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name implements cardmill.Extractor.
func (e *Extractor) Name() string { return "readability" }

// CanHandle implements cardmill.Extractor. The extractor is a generic
// fallback and accepts any URL.
func (e *Extractor) CanHandle(string) bool { return true }

// Extract implements cardmill.Extractor.
func (e *Extractor) Extract(rawurl, rawHTML string) (*cardmill.Document, error) {
	if rawHTML == "" {
		return nil, cardmill.Errorf(cardmill.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, cardmill.Errorf(cardmill.EINTERNAL, "extract content: %s", err)
	}

	content, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, cardmill.Errorf(cardmill.EINTERNAL, "parse extracted content: %s", err)
	}

	doc := &cardmill.Document{
		URL: rawurl,
		Metadata: cardmill.Metadata{
			Title:       article.Title,
			Description: article.Excerpt,
			Author:      article.Byline,
		},
		Blocks: cmgoquery.Blocks(content.Selection),
		Images: cmgoquery.Images(content.Selection, nil),
	}
	if article.PublishedTime != nil {
		doc.Metadata.Published = article.PublishedTime.Format("2006-01-02")
	}

	return doc, nil
}
