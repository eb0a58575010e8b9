package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/jorfcheck/internal/model"
	"github.com/ppiankov/jorfcheck/internal/ocr"
	"github.com/ppiankov/jorfcheck/internal/pdftext"
)

// ErrNotPDF is returned when a candidate document is not a readable PDF
var ErrNotPDF = pdftext.ErrNotPDF

// Extraction is the text recovered from one document
type Extraction struct {
	Text   string
	Source model.TextSource
	Pages  int
}

// TextExtractor turns a document URL into text
type TextExtractor interface {
	Extract(ctx context.Context, url string) (*Extraction, error)
}

// DocumentFetcher downloads a document body
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// TextLayerReader reads the embedded text of a PDF
type TextLayerReader interface {
	Read(data []byte) (*pdftext.Document, error)
}

// PageRasterizer renders every page of a PDF to an image
type PageRasterizer interface {
	Rasterize(ctx context.Context, data []byte) ([]pdftext.PageImage, error)
}

// Extractor reads a PDF's text layer and falls back to OCR when the layer
// carries no text, as with scanned gazette issues.
type Extractor struct {
	fetcher    DocumentFetcher
	reader     TextLayerReader
	rasterizer PageRasterizer
	engine     ocr.Engine // nil disables the OCR fallback
}

// NewExtractor creates an extractor from its collaborators
func NewExtractor(fetcher DocumentFetcher, reader TextLayerReader, rasterizer PageRasterizer, engine ocr.Engine) *Extractor {
	return &Extractor{
		fetcher:    fetcher,
		reader:     reader,
		rasterizer: rasterizer,
		engine:     engine,
	}
}

// Extract downloads url once and returns its text, which may be empty
func (e *Extractor) Extract(ctx context.Context, url string) (*Extraction, error) {
	result, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := e.reader.Read(result.Body)
	if err != nil {
		return nil, fmt.Errorf("read text layer: %w", err)
	}

	text := doc.Text()
	if strings.TrimSpace(text) != "" {
		return &Extraction{Text: text, Source: model.SourceTextLayer, Pages: len(doc.Pages)}, nil
	}

	return e.recognize(ctx, result.Body)
}

func (e *Extractor) recognize(ctx context.Context, data []byte) (*Extraction, error) {
	if e.engine == nil || e.rasterizer == nil {
		return nil, errors.New("text layer is empty and OCR is not configured")
	}

	pages, err := e.rasterizer.Rasterize(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}

	images := make([]ocr.Image, 0, len(pages))
	for _, p := range pages {
		images = append(images, ocr.Image{Page: p.Number, PNG: p.PNG})
	}

	text, err := ocr.RecognizeAll(ctx, e.engine, images)
	if err != nil {
		return nil, fmt.Errorf("ocr (%s): %w", e.engine.Name(), err)
	}

	return &Extraction{Text: text, Source: model.SourceOCR, Pages: len(pages)}, nil
}
