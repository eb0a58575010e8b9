// Package pdftext reads the text layer of PDF documents and renders their
// pages to images for OCR.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned when the bytes cannot be opened as a PDF document
var ErrNotPDF = errors.New("not a readable PDF")

// Document is the text layer of a PDF, one entry per page
type Document struct {
	Pages []string
}

// Text joins the pages in order, one newline between pages
func (d *Document) Text() string {
	return strings.Join(d.Pages, "\n")
}

// Reader extracts the text layer from PDF bytes
type Reader struct{}

// NewReader creates a new text layer reader
func NewReader() *Reader {
	return &Reader{}
}

// Read opens data as a PDF and extracts each page's text. A page that cannot
// be decoded contributes an empty string; only a document that cannot be
// opened at all is an error.
func (r *Reader) Read(data []byte) (doc *Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc, err = nil, fmt.Errorf("%w: %v", ErrNotPDF, rec)
		}
	}()

	pr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	n := pr.NumPage()
	doc = &Document{Pages: make([]string, 0, n)}
	for i := 1; i <= n; i++ {
		doc.Pages = append(doc.Pages, pageText(pr.Page(i)))
	}
	return doc, nil
}

// pageText lays the page's glyphs out as lines, top to bottom and left to
// right. When the content stream yields no glyphs it falls back to the plain
// text operator walk, then to "".
func pageText(p pdf.Page) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()

	if p.V.IsNull() {
		return ""
	}

	glyphs := p.Content().Text
	if len(glyphs) == 0 {
		plain, err := p.GetPlainText(nil)
		if err != nil {
			return ""
		}
		return plain
	}

	rows := groupRows(glyphs)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row.String())
	}
	return strings.Join(lines, "\n")
}

// row is a run of glyphs sharing a baseline
type row struct {
	y      float64
	glyphs []pdf.Text
}

// String renders the row, adding a space where the horizontal gap between
// two glyphs is wider than a fraction of the font size.
func (r *row) String() string {
	sort.SliceStable(r.glyphs, func(i, j int) bool { return r.glyphs[i].X < r.glyphs[j].X })

	var b strings.Builder
	for i, g := range r.glyphs {
		if i > 0 {
			prev := r.glyphs[i-1]
			gap := g.X - (prev.X + prev.W)
			if gap > spaceGap*g.FontSize && prev.S != " " && g.S != " " {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return b.String()
}

// spaceGap is the fraction of the font size treated as a word break
const spaceGap = 0.15

// groupRows buckets glyphs by baseline and orders the rows top to bottom
func groupRows(glyphs []pdf.Text) []*row {
	var rows []*row
	for _, g := range glyphs {
		tolerance := math.Max(1, g.FontSize*0.3)
		var target *row
		for _, r := range rows {
			if math.Abs(r.y-g.Y) <= tolerance {
				target = r
				break
			}
		}
		if target == nil {
			target = &row{y: g.Y}
			rows = append(rows, target)
		}
		target.glyphs = append(target.glyphs, g)
	}

	// PDF user space grows upwards
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	return rows
}
