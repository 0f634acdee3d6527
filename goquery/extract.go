// Package goquery provides site-specific extractors built on CSS selectors.
// Each extractor targets the HTML structure of one blog it knows well and
// therefore beats the generic heuristic extractors on those domains.
package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardmill"
)

// minBlockLen filters out stray snippets (social buttons, bylines inside the
// article container) that slip through container selection.
const minBlockLen = 10

// blockSelector matches every element that maps to a content block.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, ul, ol, blockquote, pre"

// skipImageSubstrings mark images that are chrome, not content.
var skipImageSubstrings = []string{"icon", "logo", "avatar", "pixel", "placeholder", "tracking"}

// Blocks walks the container in document order and converts matching
// elements to typed blocks.
func Blocks(container *goquery.Selection) []cardmill.Block {
	var blocks []cardmill.Block

	container.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Skip elements nested inside other block elements (e.g. a p
		// inside a blockquote) to avoid duplicating their text.
		if sel.ParentsFiltered("blockquote, pre, li").Length() > 0 {
			return
		}

		tag := goquery.NodeName(sel)
		switch tag {
		case "ul", "ol":
			var items []string
			sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
				if text := strings.TrimSpace(li.Text()); text != "" {
					items = append(items, text)
				}
			})
			if len(items) > 0 {
				blocks = append(blocks, cardmill.Block{
					Type:    cardmill.BlockList,
					Items:   items,
					Ordered: tag == "ol",
				})
			}
		default:
			text := strings.TrimSpace(sel.Text())
			if len(text) < minBlockLen && tag != "pre" {
				return
			}
			blocks = append(blocks, elementBlock(tag, text))
		}
	})

	return blocks
}

// elementBlock maps a non-list element to its block.
func elementBlock(tag, text string) cardmill.Block {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level, _ := strconv.Atoi(tag[1:])
		return cardmill.Block{Type: cardmill.BlockHeading, Level: level, Content: text}
	case "blockquote":
		return cardmill.Block{Type: cardmill.BlockQuote, Content: text}
	case "pre":
		return cardmill.Block{Type: cardmill.BlockCode, Content: text}
	default:
		return cardmill.Block{Type: cardmill.BlockParagraph, Content: text}
	}
}

// Images collects content images from the container, resolving relative
// URLs against base and pulling captions from enclosing figures.
func Images(container *goquery.Selection, base *url.URL) []cardmill.Image {
	var images []cardmill.Image
	seen := make(map[string]bool)

	container.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			// Lazy-loaded images keep the real URL in data-src.
			src, ok = sel.Attr("data-src")
			if !ok || src == "" {
				return
			}
		}

		if isChromeImage(src) {
			return
		}

		resolved := resolveURL(base, src)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true

		alt := sel.AttrOr("alt", "")
		caption := figureCaption(sel)
		if caption == "" {
			caption = alt
		}

		images = append(images, cardmill.Image{
			SourceURL: resolved,
			Caption:   caption,
			AltText:   alt,
		})
	})

	return images
}

// figureCaption returns the figcaption text of the figure enclosing img.
func figureCaption(img *goquery.Selection) string {
	figure := img.ParentsFiltered("figure").First()
	if figure.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(figure.Find("figcaption").First().Text())
}

// isChromeImage reports whether the URL looks like page chrome rather than
// article content.
func isChromeImage(src string) bool {
	lower := strings.ToLower(src)
	for _, skip := range skipImageSubstrings {
		if strings.Contains(lower, skip) {
			return true
		}
	}
	return false
}

// resolveURL resolves a possibly-relative image URL against the page URL.
func resolveURL(base *url.URL, src string) string {
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// metaProperty returns the content attribute of a meta tag by property name.
func metaProperty(doc *goquery.Document, property string) string {
	var content string
	doc.Find("meta[property='" + property + "']").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		content = sel.AttrOr("content", "")
		return false
	})
	return strings.TrimSpace(content)
}

// metaName returns the content attribute of a meta tag by name.
func metaName(doc *goquery.Document, name string) string {
	var content string
	doc.Find("meta[name='" + name + "']").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		content = sel.AttrOr("content", "")
		return false
	})
	return strings.TrimSpace(content)
}

// timeDatetime returns the datetime attribute (or text) of the first time
// element in the document.
func timeDatetime(doc *goquery.Document) string {
	t := doc.Find("time").First()
	if t.Length() == 0 {
		return ""
	}
	if dt, ok := t.Attr("datetime"); ok && dt != "" {
		return dt
	}
	return strings.TrimSpace(t.Text())
}
