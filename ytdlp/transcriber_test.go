package ytdlp_test

import (
	"testing"

	"github.com/fwojciec/cardmill"
	"github.com/fwojciec/cardmill/ytdlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriber_CanHandle(t *testing.T) {
	t.Parallel()

	tr := ytdlp.NewTranscriber("/models/ggml-base.en.bin")

	assert.True(t, tr.CanHandle("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.True(t, tr.CanHandle("https://youtu.be/dQw4w9WgXcQ"))
	assert.True(t, tr.CanHandle("https://www.youtube.com/shorts/abc123"))
	assert.False(t, tr.CanHandle("https://example.com/article"))
	assert.False(t, tr.CanHandle("https://www.youtube.com/@somechannel"))
}

func TestParseTranscript(t *testing.T) {
	t.Parallel()

	raw := "So today we're going to talk about\nconsensus protocols.\n\nThe key insight behind Raft is\nunderstandability.\n\n\n"

	doc := ytdlp.ParseTranscript("https://youtu.be/abc", raw)

	assert.Equal(t, "https://youtu.be/abc", doc.URL)
	assert.Equal(t, "Transcript of https://youtu.be/abc", doc.Metadata.Title)

	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, cardmill.BlockParagraph, doc.Blocks[0].Type)
	assert.Equal(t, "So today we're going to talk about consensus protocols.", doc.Blocks[0].Content)
	assert.Equal(t, "The key insight behind Raft is understandability.", doc.Blocks[1].Content)
}

func TestParseTranscript_Empty(t *testing.T) {
	t.Parallel()

	doc := ytdlp.ParseTranscript("https://youtu.be/abc", "   \n\n  ")
	assert.Empty(t, doc.Blocks)
}
