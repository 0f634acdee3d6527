// Package ytdlp implements video transcription by shelling out to yt-dlp
// for audio extraction and whisper-cli for speech to text.
package ytdlp

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/cardmill"
)

// videoDomains are URL fragments that mark a video page.
var videoDomains = []string{"youtube.com/watch", "youtu.be/", "youtube.com/shorts"}

// Ensure Transcriber implements cardmill.Transcriber at compile time.
var _ cardmill.Transcriber = (*Transcriber)(nil)

// Transcriber turns video URLs into transcript documents. It requires the
// yt-dlp and whisper-cli binaries on PATH and a whisper model file on disk.
type Transcriber struct {
	modelPath string
	runner    commandRunner
}

// commandRunner abstracts exec.CommandContext for tests.
type commandRunner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}

// NewTranscriber creates a Transcriber using the whisper model at modelPath.
func NewTranscriber(modelPath string) *Transcriber {
	return &Transcriber{modelPath: modelPath, runner: execRunner}
}

// CanHandle reports whether the URL points at a supported video page.
func (t *Transcriber) CanHandle(rawurl string) bool {
	for _, domain := range videoDomains {
		if strings.Contains(rawurl, domain) {
			return true
		}
	}
	return false
}

// Transcribe downloads the video's audio, runs speech to text and returns
// the transcript as a paragraph-only document.
func (t *Transcriber) Transcribe(ctx context.Context, rawurl string) (*cardmill.Document, error) {
	if !t.CanHandle(rawurl) {
		return nil, cardmill.Errorf(cardmill.EINVALID, "not a supported video URL: %s", rawurl)
	}

	workDir, err := os.MkdirTemp("", "cardmill-transcribe-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(workDir)

	audioPath := filepath.Join(workDir, "audio.wav")
	if err := t.runner(ctx, "yt-dlp",
		"--extract-audio",
		"--audio-format", "wav",
		"--postprocessor-args", "-ar 16000 -ac 1",
		"--output", audioPath,
		rawurl,
	); err != nil {
		return nil, cardmill.Errorf(cardmill.EUNAVAILABLE, "download audio: %s", err)
	}

	transcriptBase := filepath.Join(workDir, "transcript")
	if err := t.runner(ctx, "whisper-cli",
		"--model", t.modelPath,
		"--output-txt",
		"--output-file", transcriptBase,
		"--no-prints",
		audioPath,
	); err != nil {
		return nil, cardmill.Errorf(cardmill.EINTERNAL, "transcribe audio: %s", err)
	}

	raw, err := os.ReadFile(transcriptBase + ".txt")
	if err != nil {
		return nil, cardmill.Errorf(cardmill.EINTERNAL, "read transcript: %s", err)
	}

	doc := ParseTranscript(rawurl, string(raw))
	doc.ScrapedAt = time.Now().UTC()
	return doc, nil
}

// ParseTranscript converts raw transcript text into a document. Blank lines
// separate paragraphs; single newlines within a paragraph are joined.
func ParseTranscript(rawurl, raw string) *cardmill.Document {
	doc := &cardmill.Document{
		URL:      rawurl,
		Metadata: cardmill.Metadata{Title: "Transcript of " + rawurl},
	}

	for _, chunk := range strings.Split(raw, "\n\n") {
		lines := strings.Fields(strings.ReplaceAll(chunk, "\n", " "))
		text := strings.Join(lines, " ")
		if text == "" {
			continue
		}
		doc.Blocks = append(doc.Blocks, cardmill.Block{
			Type:    cardmill.BlockParagraph,
			Content: text,
		})
	}

	return doc
}
