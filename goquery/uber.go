package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardmill"
)

// uberContainers are tried in order to find the post body.
var uberContainers = []string{"div[data-testid='blog-article-content']", "main article", "main"}

// UberExtractor extracts posts from the Uber engineering blog.
type UberExtractor struct{}

var _ cardmill.Extractor = (*UberExtractor)(nil)

// NewUberExtractor returns an extractor for Uber blog posts.
func NewUberExtractor() *UberExtractor {
	return &UberExtractor{}
}

// Name implements cardmill.Extractor.
func (e *UberExtractor) Name() string { return "uber" }

// CanHandle implements cardmill.Extractor.
func (e *UberExtractor) CanHandle(rawurl string) bool {
	return strings.Contains(rawurl, "uber.com/blog")
}

// Extract implements cardmill.Extractor.
func (e *UberExtractor) Extract(rawurl, html string) (*cardmill.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cardmill.Errorf(cardmill.EINVALID, "parse html: %s", err)
	}

	var container *goquery.Selection
	for _, sel := range uberContainers {
		container = doc.Find(sel).First()
		if container.Length() > 0 {
			break
		}
	}
	if container == nil || container.Length() == 0 {
		return nil, cardmill.Errorf(cardmill.ENOTFOUND, "no post content found")
	}

	title := metaProperty(doc, "og:title")
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
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
