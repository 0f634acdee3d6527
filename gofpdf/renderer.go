// Package gofpdf renders articles as simple PDF files for offline reading.
package gofpdf

import (
	"strconv"
	"strings"

	"github.com/fwojciec/cardmill"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Renderer implements cardmill.PDFRenderer at compile time.
var _ cardmill.PDFRenderer = (*Renderer)(nil)

// Renderer writes a minimal PDF layout: bold headings, body paragraphs,
// indented lists and quotes. It does not attempt full Markdown layout.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderPDF writes the document to outPath as a PDF.
func (r *Renderer) RenderPDF(doc *cardmill.Document, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	title := doc.Metadata.Title
	if title == "" {
		title = "Untitled"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	if doc.Metadata.Author != "" {
		pdf.CellFormat(0, 5, "Author: "+doc.Metadata.Author, "", 1, "L", false, 0, "")
	}
	if doc.Metadata.Published != "" {
		pdf.CellFormat(0, 5, "Published: "+doc.Metadata.Published, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5, "Source: "+doc.URL, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, block := range doc.Blocks {
		writeBlock(pdf, block)
	}

	return pdf.OutputFileAndClose(outPath)
}

func writeBlock(pdf *gofpdf.Fpdf, block cardmill.Block) {
	switch block.Type {
	case cardmill.BlockHeading:
		size := 14.0
		if block.Level >= 2 {
			size = 12.0
		}
		pdf.SetFont("Helvetica", "B", size)
		pdf.MultiCell(0, 7, block.Content, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Ln(1)
	case cardmill.BlockList:
		pdf.SetFont("Helvetica", "", 11)
		for i, item := range block.Items {
			marker := "- "
			if block.Ordered {
				marker = strconv.Itoa(i+1) + ". "
			}
			pdf.SetX(pdf.GetX() + 4)
			pdf.MultiCell(0, 5, marker+item, "", "L", false)
		}
		pdf.Ln(2)
	case cardmill.BlockQuote:
		pdf.SetFont("Helvetica", "I", 11)
		pdf.SetX(pdf.GetX() + 6)
		pdf.MultiCell(0, 5, block.Content, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Ln(2)
	case cardmill.BlockCode:
		pdf.SetFont("Courier", "", 9)
		for _, line := range strings.Split(block.Content, "\n") {
			pdf.SetX(pdf.GetX() + 4)
			pdf.CellFormat(0, 4, line, "", 1, "L", false, 0, "")
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.Ln(2)
	default:
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, block.Content, "", "L", false)
		pdf.Ln(2)
	}
}
