package cardmill_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/cardmill"
	"github.com/stretchr/testify/assert"
)

func TestFormatMarkdown(t *testing.T) {
	t.Parallel()

	doc := testDocument()
	md := cardmill.FormatMarkdown(doc)

	assert.Contains(t, md, "# The Memory Wall\n")
	assert.Contains(t, md, "**Author:** Jane Doe")
	assert.Contains(t, md, "## Background")
	assert.Contains(t, md, "- HBM\n- GDDR\n- LPDDR\n")
	assert.Contains(t, md, "> Memory is the new bottleneck.")
	assert.Contains(t, md, "```\nmake bandwidth\n```")
	assert.Contains(t, md, "## Images")
	assert.Contains(t, md, "Caption: Figure 1")
}

func TestFormatMarkdown_OrderedList(t *testing.T) {
	t.Parallel()

	doc := &cardmill.Document{
		URL: "https://example.com",
		Blocks: []cardmill.Block{
			{Type: cardmill.BlockList, Ordered: true, Items: []string{"first", "second"}},
		},
	}

	md := cardmill.FormatMarkdown(doc)
	assert.Contains(t, md, "1. first\n2. second\n")
}

func TestFormatText(t *testing.T) {
	t.Parallel()

	doc := testDocument()
	text := cardmill.FormatText(doc)

	assert.Contains(t, text, "The Memory Wall\n")
	assert.Contains(t, text, "DRAM scaling has stalled.")
	assert.NotContains(t, text, "##")
	assert.NotContains(t, text, "```")
}

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"spaces to underscores", "The Memory Wall", "The_Memory_Wall"},
		{"strips unsafe characters", `What? A "title": with/bad\chars`, "What_A_title_withbadchars"},
		{"strips control characters", "Title\x00With\x01Nulls", "TitleWithNulls"},
		{"trims surrounding whitespace", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cardmill.Slug(tt.title))
		})
	}
}

func TestSlug_CapsLength(t *testing.T) {
	t.Parallel()

	long := ""
	for i := 0; i < 30; i++ {
		long += "abcdefghij"
	}
	assert.Len(t, cardmill.Slug(long), 100)
}

func TestSlug_CapsLengthOnRuneBoundary(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("記憶", 50)
	got := cardmill.Slug(long)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 100)
}
