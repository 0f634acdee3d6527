package gofpdf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/cardmill"
	"github.com/fwojciec/cardmill/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderPDF(t *testing.T) {
	t.Parallel()

	doc := &cardmill.Document{
		URL:      "https://example.com/wal",
		Metadata: cardmill.Metadata{Title: "Write-Ahead Logging", Author: "Pat Helland"},
		Blocks: []cardmill.Block{
			{Type: cardmill.BlockHeading, Level: 2, Content: "Durability"},
			{Type: cardmill.BlockParagraph, Content: "Log before data."},
			{Type: cardmill.BlockList, Items: []string{"Append", "Flush", "Apply"}, Ordered: true},
			{Type: cardmill.BlockCode, Content: "fsync(log_fd);"},
		},
	}

	outPath := filepath.Join(t.TempDir(), "article.pdf")
	require.NoError(t, gofpdf.NewRenderer().RenderPDF(doc, outPath))

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, len(raw) > 0)
	assert.Equal(t, "%PDF", string(raw[:4]))
}
