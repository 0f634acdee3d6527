package cardmill

import "context"

// Store persists document renderings to disk: a JSON file with the full
// structured data, a Markdown rendering, and a plain-text rendering, all
// under a per-article directory.
type Store interface {
	// Save writes all renderings for the document.
	Save(ctx context.Context, doc *Document) error

	// ImageDir creates (if needed) and returns the directory where the
	// document's images should be downloaded.
	ImageDir(doc *Document) (string, error)
}

// PDFRenderer writes a PDF rendering of a document.
// Optional: stores only produce PDFs when a renderer is configured.
type PDFRenderer interface {
	RenderPDF(doc *Document, path string) error
}
