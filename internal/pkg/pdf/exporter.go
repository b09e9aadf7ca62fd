package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"golang.org/x/sync/singleflight"
)

// Document is anything that can lay itself out on an A4 page.
type Document interface {
	Filename() string
	Render(b *Builder) error
}

// Exporter renders documents to PDF bytes. Concurrent exports sharing a
// key are collapsed into a single render. Keys must identify the subject
// of the document (slip ID, certificate ID, ...), not just its filename:
// download filenames are deliberately coarse (one per period, or per
// employee name) and reusing them as keys would hand one caller another
// subject's bytes.
type Exporter struct {
	group singleflight.Group
}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Export(key string, doc Document) ([]byte, error) {
	v, err, _ := e.group.Do(key, func() (interface{}, error) {
		b := newBuilder()
		if err := doc.Render(b); err != nil {
			return nil, fmt.Errorf("render %s: %w", doc.Filename(), err)
		}
		return b.bytes()
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Builder wraps fpdf with the handful of layout primitives the
// document templates need. A4 portrait, millimeter units.
type Builder struct {
	pdf *fpdf.Fpdf
}

const (
	pageMargin = 18.0
	lineHeight = 7.0
)

func newBuilder() *Builder {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.SetAutoPageBreak(true, pageMargin)
	p.AddPage()
	return &Builder{pdf: p}
}

func (b *Builder) Title(text string) {
	b.pdf.SetFont("Helvetica", "B", 16)
	b.pdf.CellFormat(0, 12, text, "", 1, "C", false, 0, "")
	b.pdf.Ln(2)
}

func (b *Builder) Subtitle(text string) {
	b.pdf.SetFont("Helvetica", "", 11)
	b.pdf.SetTextColor(90, 90, 90)
	b.pdf.CellFormat(0, 6, text, "", 1, "C", false, 0, "")
	b.pdf.SetTextColor(0, 0, 0)
	b.pdf.Ln(4)
}

func (b *Builder) SectionHeading(text string) {
	b.pdf.SetFont("Helvetica", "B", 12)
	b.pdf.CellFormat(0, 9, text, "B", 1, "L", false, 0, "")
	b.pdf.Ln(2)
}

// KeyValue renders a label/value pair in two columns.
func (b *Builder) KeyValue(label, value string) {
	b.pdf.SetFont("Helvetica", "B", 10)
	b.pdf.CellFormat(55, lineHeight, label, "", 0, "L", false, 0, "")
	b.pdf.SetFont("Helvetica", "", 10)
	b.pdf.MultiCell(0, lineHeight, value, "", "L", false)
}

// AmountRow renders a description with a right-aligned amount.
func (b *Builder) AmountRow(description, amount string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	b.pdf.SetFont("Helvetica", style, 10)
	b.pdf.CellFormat(120, lineHeight, description, "", 0, "L", false, 0, "")
	b.pdf.CellFormat(0, lineHeight, amount, "", 1, "R", false, 0, "")
}

func (b *Builder) Divider() {
	b.pdf.Ln(1)
	x, y := b.pdf.GetXY()
	w, _ := b.pdf.GetPageSize()
	b.pdf.Line(x, y, w-pageMargin, y)
	b.pdf.Ln(2)
}

func (b *Builder) Paragraph(text string) {
	b.pdf.SetFont("Helvetica", "", 10)
	b.pdf.MultiCell(0, 6, text, "", "L", false)
	b.pdf.Ln(3)
}

func (b *Builder) Spacer(h float64) {
	b.pdf.Ln(h)
}

func (b *Builder) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
