package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardmill"
)

// JaneStreetExtractor extracts posts from the Jane Street tech blog.
type JaneStreetExtractor struct{}

var _ cardmill.Extractor = (*JaneStreetExtractor)(nil)

// NewJaneStreetExtractor returns an extractor for Jane Street blog posts.
func NewJaneStreetExtractor() *JaneStreetExtractor {
	return &JaneStreetExtractor{}
}

// Name implements cardmill.Extractor.
func (e *JaneStreetExtractor) Name() string { return "janestreet" }

// CanHandle implements cardmill.Extractor.
func (e *JaneStreetExtractor) CanHandle(rawurl string) bool {
	return strings.Contains(rawurl, "blog.janestreet.com")
}

// Extract implements cardmill.Extractor.
func (e *JaneStreetExtractor) Extract(rawurl, html string) (*cardmill.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cardmill.Errorf(cardmill.EINVALID, "parse html: %s", err)
	}

	// The page lists related posts in their own article elements; the main
	// post is the one carrying a post header.
	var container *goquery.Selection
	doc.Find("article").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Find("div.post-header").Length() > 0 {
			container = sel
			return false
		}
		return true
	})
	if container == nil {
		container = doc.Find("article").First()
	}
	if container == nil || container.Length() == 0 {
		return nil, cardmill.Errorf(cardmill.ENOTFOUND, "no post content found")
	}

	title := metaProperty(doc, "og:title")
	if title == "" {
		title = strings.TrimSpace(container.Find("h1").First().Text())
	}

	author := metaName(doc, "author")
	if author == "" {
		author = strings.TrimSpace(container.Find("div.post-header a.author").First().Text())
	}

	base, _ := url.Parse(rawurl)

	// Drop the header so its title does not duplicate into the blocks.
	content := container.Clone()
	content.Find("div.post-header").Remove()

	return &cardmill.Document{
		URL: rawurl,
		Metadata: cardmill.Metadata{
			Title:       title,
			Description: metaProperty(doc, "og:description"),
			Author:      author,
			Published:   timeDatetime(doc),
		},
		Blocks: Blocks(content),
		Images: Images(content, base),
	}, nil
}
