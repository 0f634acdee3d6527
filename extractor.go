package cardmill

// Extractor converts raw markup from a known class of sites into a Document.
type Extractor interface {
	// Name identifies the strategy in logs and extraction results.
	Name() string

	// CanHandle reports whether this extractor understands URLs like url.
	// Typically a domain substring match. Never touches the network.
	CanHandle(url string) bool

	// Extract processes raw HTML fetched from url and returns a
	// normalized Document. Returns EINVALID when the markup holds no
	// usable content.
	Extract(url string, html string) (*Document, error)
}

// Converter converts HTML fragments to Markdown.
// Extractors use it so inline markup (links, emphasis, code spans)
// survives into block text.
type Converter interface {
	Convert(html string) (string, error)
}

// ExtractionResult wraps the Document produced by one extraction attempt
// together with the name of the strategy that ran, for debugging.
type ExtractionResult struct {
	Document  *Document
	Extractor string
	Err       error
}

// OK reports whether extraction produced a usable document.
func (r *ExtractionResult) OK() bool {
	return r.Err == nil && r.Document != nil
}
