// Package trafilatura provides the default generic extractor, wrapping
// go-trafilatura's content detection for pages no site-specific extractor
// claims.
package trafilatura

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/fwojciec/cardmill"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ cardmill.Extractor = (*Extractor)(nil)

// Extractor extracts the main content of arbitrary article pages.
type Extractor struct {
	converter cardmill.Converter
}

// NewExtractor creates an Extractor. The converter turns each content
// element's HTML into markdown so inline emphasis, links and code survive
// into the block text.
func NewExtractor(converter cardmill.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// Name implements cardmill.Extractor.
func (e *Extractor) Name() string { return "trafilatura" }

// CanHandle implements cardmill.Extractor. The extractor is a generic
// fallback and accepts any URL.
func (e *Extractor) CanHandle(string) bool { return true }

// Extract implements cardmill.Extractor.
func (e *Extractor) Extract(rawurl, rawHTML string) (*cardmill.Document, error) {
	if rawHTML == "" {
		return nil, cardmill.Errorf(cardmill.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, cardmill.Errorf(cardmill.EINTERNAL, "extract content: %s", err)
	}

	doc := &cardmill.Document{
		URL: rawurl,
		Metadata: cardmill.Metadata{
			Title:       result.Metadata.Title,
			Description: result.Metadata.Description,
			Author:      result.Metadata.Author,
		},
	}
	if !result.Metadata.Date.IsZero() {
		doc.Metadata.Published = result.Metadata.Date.Format("2006-01-02")
	}

	if result.ContentNode != nil {
		doc.Blocks, err = e.contentBlocks(result.ContentNode)
		if err != nil {
			return nil, err
		}
		doc.Images = contentImages(result.ContentNode)
	}

	return doc, nil
}

// contentBlocks walks the content tree and converts block-level elements
// to typed blocks in document order.
func (e *Extractor) contentBlocks(root *html.Node) ([]cardmill.Block, error) {
	var blocks []cardmill.Block
	var walkErr error

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if walkErr != nil {
			return
		}
		if n.Type == html.ElementNode {
			block, handled, err := e.elementBlock(n)
			if err != nil {
				walkErr = err
				return
			}
			if handled {
				if block != nil {
					blocks = append(blocks, *block)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if walkErr != nil {
		return nil, walkErr
	}
	return blocks, nil
}

// elementBlock converts a single element to a block. handled reports
// whether the element was consumed so the walk skips its children.
func (e *Extractor) elementBlock(n *html.Node) (block *cardmill.Block, handled bool, err error) {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		text, err := e.nodeText(n)
		if err != nil {
			return nil, true, err
		}
		if text == "" {
			return nil, true, nil
		}
		level, _ := strconv.Atoi(n.Data[1:])
		return &cardmill.Block{Type: cardmill.BlockHeading, Level: level, Content: text}, true, nil
	case "p":
		text, err := e.nodeText(n)
		if err != nil {
			return nil, true, err
		}
		if text == "" {
			return nil, true, nil
		}
		return &cardmill.Block{Type: cardmill.BlockParagraph, Content: text}, true, nil
	case "ul", "ol":
		var items []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.Data != "li" {
				continue
			}
			text, err := e.nodeText(c)
			if err != nil {
				return nil, true, err
			}
			if text != "" {
				items = append(items, text)
			}
		}
		if len(items) == 0 {
			return nil, true, nil
		}
		return &cardmill.Block{Type: cardmill.BlockList, Items: items, Ordered: n.Data == "ol"}, true, nil
	case "blockquote", "q":
		text, err := e.nodeText(n)
		if err != nil {
			return nil, true, err
		}
		if text == "" {
			return nil, true, nil
		}
		return &cardmill.Block{Type: cardmill.BlockQuote, Content: text}, true, nil
	case "pre", "code":
		text := plainText(n)
		if strings.TrimSpace(text) == "" {
			return nil, true, nil
		}
		return &cardmill.Block{Type: cardmill.BlockCode, Content: strings.TrimRight(text, "\n")}, true, nil
	}
	return nil, false, nil
}

// nodeText renders the node's inner HTML and converts it to markdown.
func (e *Extractor) nodeText(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", cardmill.Errorf(cardmill.EINTERNAL, "render content: %s", err)
		}
	}
	md, err := e.converter.Convert(buf.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

// contentImages collects img elements from the content tree.
func contentImages(root *html.Node) []cardmill.Image {
	var images []cardmill.Image
	seen := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			var src, alt string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "src":
					src = attr.Val
				case "alt":
					alt = attr.Val
				}
			}
			if src != "" && !seen[src] {
				seen[src] = true
				images = append(images, cardmill.Image{SourceURL: src, AltText: alt})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return images
}

// plainText returns the concatenated text content of a node.
func plainText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
