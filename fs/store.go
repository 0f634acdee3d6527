// Package fs provides file-based storage for scraped articles.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/cardmill"
)

// Ensure Store implements cardmill.Store at compile time.
var _ cardmill.Store = (*Store)(nil)

// Store writes articles into per-article directories under a base directory.
// Each article gets a directory named after its slugged title containing
// article.json, article.md and article.txt, plus an images/ subdirectory
// when images are downloaded.
type Store struct {
	baseDir string
	pdf     cardmill.PDFRenderer
}

// Option configures a Store.
type Option func(*Store)

// WithPDFRenderer makes Save additionally render article.pdf.
func WithPDFRenderer(pdf cardmill.PDFRenderer) Option {
	return func(s *Store) {
		s.pdf = pdf
	}
}

// NewStore creates a Store rooted at baseDir.
func NewStore(baseDir string, opts ...Option) *Store {
	s := &Store{baseDir: baseDir}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// articleDir returns the directory for a document, derived from its title.
// Untitled documents fall back to a host+timestamp name so a page without
// usable metadata can still be saved.
func (s *Store) articleDir(doc *cardmill.Document) (string, error) {
	slug := cardmill.Slug(doc.Metadata.Title)
	if slug == "" {
		slug = untitledSlug(doc)
	}
	if slug == "" {
		return "", cardmill.Errorf(cardmill.EINVALID, "document has no usable title or URL")
	}
	return filepath.Join(s.baseDir, slug), nil
}

func untitledSlug(doc *cardmill.Document) string {
	u, err := url.Parse(doc.URL)
	if err != nil || u.Host == "" {
		return ""
	}
	ts := doc.ScrapedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	return cardmill.Slug(u.Host + "_" + ts.UTC().Format("20060102T150405"))
}

// Save writes the document to disk in all configured formats.
func (s *Store) Save(ctx context.Context, doc *cardmill.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	dir, err := s.articleDir(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "article.json"), data, 0644); err != nil {
		return err
	}

	md := cardmill.FormatMarkdown(doc)
	if err := os.WriteFile(filepath.Join(dir, "article.md"), []byte(md), 0644); err != nil {
		return err
	}

	text := cardmill.FormatText(doc)
	if err := os.WriteFile(filepath.Join(dir, "article.txt"), []byte(text), 0644); err != nil {
		return err
	}

	if s.pdf != nil {
		if err := s.pdf.RenderPDF(doc, filepath.Join(dir, "article.pdf")); err != nil {
			return err
		}
	}

	return nil
}

// ImageDir creates and returns the images directory for a document.
func (s *Store) ImageDir(doc *cardmill.Document) (string, error) {
	dir, err := s.articleDir(doc)
	if err != nil {
		return "", err
	}
	imageDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imageDir, 0755); err != nil {
		return "", err
	}
	return imageDir, nil
}
