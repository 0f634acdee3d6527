package cardmill

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// BlockType identifies the kind of content a Block holds.
type BlockType string

// Block types produced by extractors.
const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockQuote     BlockType = "quote"
	BlockCode      BlockType = "code"
)

// Block is a single typed unit of article content. Heading blocks carry a
// level (1-6), list blocks carry items, everything else uses Content.
type Block struct {
	Type    BlockType `json:"type"`
	Content string    `json:"content,omitempty"`
	Level   int       `json:"level,omitempty"`
	Items   []string  `json:"items,omitempty"`
	Ordered bool      `json:"ordered,omitempty"`
}

// Image is a reference to an image found in the article body.
// LocalPath is filled in once the image has been downloaded.
type Image struct {
	SourceURL string `json:"url"`
	Caption   string `json:"caption,omitempty"`
	AltText   string `json:"alt_text,omitempty"`
	LocalPath string `json:"local_path,omitempty"`
}

// Metadata holds article-level fields extracted from the page.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Published   string `json:"publication_date,omitempty"`
}

// Document represents one scraped source. The JSON field names match the
// on-disk schema this tool has always written (metadata / text_content /
// images / scrape_timestamp), so previously saved articles stay readable.
// A Document is immutable once extraction completes; the image downloader
// fills in LocalPath before the document is saved.
type Document struct {
	URL         string    `json:"url"`
	Metadata    Metadata  `json:"metadata"`
	Blocks      []Block   `json:"text_content"`
	Images      []Image   `json:"images"`
	ScrapedAt   time.Time `json:"scrape_timestamp"`
	ContentHash string    `json:"content_hash,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if len(d.Blocks) == 0 {
		return Errorf(EINVALID, "document has no content blocks")
	}
	return nil
}

// ComputeHash returns an xxhash digest of the document's plain-text
// rendering. Used by the run ledger to spot re-scrapes of unchanged content.
func (d *Document) ComputeHash() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(FormatText(d)))
}
