package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardmill"
)

// substackContainers are tried in order; the first match becomes the article
// body. Posts on custom domains keep the same DOM as *.substack.com.
var substackContainers = []string{"div.available-content", "div.body.markup", "article"}

// substackDomains are custom domains known to run on Substack.
var substackDomains = []string{"newsletter.semianalysis.com"}

// SubstackExtractor extracts posts published on Substack, including
// newsletters served from custom domains.
type SubstackExtractor struct{}

var _ cardmill.Extractor = (*SubstackExtractor)(nil)

// NewSubstackExtractor returns an extractor for Substack posts.
func NewSubstackExtractor() *SubstackExtractor {
	return &SubstackExtractor{}
}

// Name implements cardmill.Extractor.
func (e *SubstackExtractor) Name() string { return "substack" }

// CanHandle implements cardmill.Extractor.
func (e *SubstackExtractor) CanHandle(rawurl string) bool {
	if strings.Contains(rawurl, ".substack.com") {
		return true
	}
	for _, domain := range substackDomains {
		if strings.Contains(rawurl, domain) {
			return true
		}
	}
	return false
}

// Extract implements cardmill.Extractor.
func (e *SubstackExtractor) Extract(rawurl, html string) (*cardmill.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cardmill.Errorf(cardmill.EINVALID, "parse html: %s", err)
	}

	container := doc.Find(substackContainers[0]).First()
	for _, sel := range substackContainers[1:] {
		if container.Length() > 0 {
			break
		}
		container = doc.Find(sel).First()
	}
	if container.Length() == 0 {
		return nil, cardmill.Errorf(cardmill.ENOTFOUND, "no post content found")
	}

	title := metaProperty(doc, "og:title")
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1.post-title").First().Text())
	}

	base, _ := url.Parse(rawurl)

	return &cardmill.Document{
		URL: rawurl,
		Metadata: cardmill.Metadata{
			Title:       title,
			Description: metaProperty(doc, "og:description"),
			Author:      metaName(doc, "author"),
			Published:   timeDatetime(doc),
		},
		Blocks: Blocks(container),
		Images: Images(container, base),
	}, nil
}
