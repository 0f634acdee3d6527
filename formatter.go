package cardmill

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FormatMarkdown renders a document as Markdown: metadata header, content
// blocks, then an image index. This rendering is what gets saved to disk
// and embedded in the model prompt.
func FormatMarkdown(doc *Document) string {
	var b strings.Builder

	title := doc.Metadata.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if doc.Metadata.Author != "" {
		fmt.Fprintf(&b, "**Author:** %s\n\n", doc.Metadata.Author)
	}
	if doc.Metadata.Published != "" {
		fmt.Fprintf(&b, "**Published:** %s\n\n", doc.Metadata.Published)
	}
	if doc.Metadata.Description != "" {
		fmt.Fprintf(&b, "*%s*\n\n", doc.Metadata.Description)
	}
	fmt.Fprintf(&b, "**Source:** %s\n\n", doc.URL)
	b.WriteString("---\n\n")

	for _, block := range doc.Blocks {
		writeMarkdownBlock(&b, block)
	}

	if len(doc.Images) > 0 {
		b.WriteString("\n---\n\n## Images\n\n")
		for i, img := range doc.Images {
			fmt.Fprintf(&b, "%d. %s\n", i+1, img.SourceURL)
			if img.Caption != "" {
				fmt.Fprintf(&b, "   Caption: %s\n", img.Caption)
			}
			if img.LocalPath != "" {
				fmt.Fprintf(&b, "   Local file: %s\n", img.LocalPath)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeMarkdownBlock(b *strings.Builder, block Block) {
	switch block.Type {
	case BlockHeading:
		level := block.Level
		if level < 1 || level > 6 {
			level = 2
		}
		fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", level), block.Content)
	case BlockList:
		for i, item := range block.Items {
			if block.Ordered {
				fmt.Fprintf(b, "%d. %s\n", i+1, item)
			} else {
				fmt.Fprintf(b, "- %s\n", item)
			}
		}
		b.WriteString("\n")
	case BlockQuote:
		for _, line := range strings.Split(block.Content, "\n") {
			fmt.Fprintf(b, "> %s\n", line)
		}
		b.WriteString("\n")
	case BlockCode:
		fmt.Fprintf(b, "```\n%s\n```\n\n", block.Content)
	default:
		fmt.Fprintf(b, "%s\n\n", block.Content)
	}
}

// FormatText renders a document as plain text: title, metadata lines, and
// block contents with no markup.
func FormatText(doc *Document) string {
	var b strings.Builder

	if doc.Metadata.Title != "" {
		b.WriteString(doc.Metadata.Title)
		b.WriteString("\n\n")
	}
	if doc.Metadata.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n", doc.Metadata.Author)
	}
	if doc.Metadata.Published != "" {
		fmt.Fprintf(&b, "Published: %s\n", doc.Metadata.Published)
	}
	fmt.Fprintf(&b, "Source: %s\n\n", doc.URL)

	for _, block := range doc.Blocks {
		switch block.Type {
		case BlockList:
			for _, item := range block.Items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
			b.WriteString("\n")
		default:
			b.WriteString(block.Content)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// unsafeFilenameRe matches characters that are invalid in filenames on at
// least one supported platform.
var unsafeFilenameRe = regexp.MustCompile(`[<>:"/\\|?*]`)

// Slug converts an article title into a safe directory name. Some sites ship
// NUL and other control characters inside titles, which breaks file
// creation, so those are stripped too.
func Slug(title string) string {
	s := unsafeFilenameRe.ReplaceAllString(title, "")
	s = strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	if len(s) > 100 {
		cut := 100
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}
