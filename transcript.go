package cardmill

import "context"

// Transcriber produces Documents from video URLs. The pipeline routes a URL
// to the transcriber, ahead of fetch and extraction, when CanHandle matches.
type Transcriber interface {
	// CanHandle reports whether url points at a supported video host.
	CanHandle(url string) bool

	// Transcribe downloads the video's audio, transcribes it, and wraps
	// the transcript into a paragraph-only Document.
	Transcribe(ctx context.Context, url string) (*Document, error)
}
