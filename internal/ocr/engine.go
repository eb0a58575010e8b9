// Package ocr recognizes text on rendered page images. Engines are small and
// transport-agnostic: a local binary, a native library or a remote vision
// model all satisfy the same interface.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/jorfcheck/internal/model"
)

var (
	// ErrUnknownEngine is returned for an engine name that is not registered
	ErrUnknownEngine = errors.New("unknown OCR engine")

	// ErrEngineUnavailable is returned when an engine was not compiled in or lacks configuration
	ErrEngineUnavailable = errors.New("OCR engine unavailable")
)

// Image is one page bitmap handed to an engine
type Image struct {
	Page int    // 1-based page number
	PNG  []byte // PNG-encoded bitmap
}

// Engine recognizes the text on a single page image
type Engine interface {
	// Name returns the engine name
	Name() string

	// Recognize returns the plain text found on the image
	Recognize(ctx context.Context, img Image) (string, error)
}

// RecognizeAll runs engine on each image independently and concatenates the
// results in the order given. The first failure aborts the document.
func RecognizeAll(ctx context.Context, engine Engine, images []Image) (string, error) {
	var b strings.Builder
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := engine.Recognize(ctx, img)
		if err != nil {
			return "", fmt.Errorf("recognize page %d: %w", img.Page, err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// Engine names accepted in configuration
const (
	EngineTesseract = "tesseract"
	EngineGosseract = "gosseract"
	EngineOpenAI    = "openai"
)

// NewEngine creates the engine selected by cfg.Engine
func NewEngine(cfg model.OCRConfig) (Engine, error) {
	switch strings.ToLower(cfg.Engine) {
	case "", EngineTesseract:
		return NewTesseractEngine(cfg.TesseractPath, cfg.Languages, cfg.TessdataDir), nil

	case EngineGosseract:
		return NewGosseractEngine(cfg.Languages, cfg.TessdataDir)

	case EngineOpenAI:
		engine, err := NewOpenAIEngine(cfg.OpenAI)
		if err != nil {
			return nil, err
		}
		return engine, nil

	default:
		return nil, fmt.Errorf("%w: %s (supported: %s, %s, %s)", ErrUnknownEngine, cfg.Engine, EngineTesseract, EngineGosseract, EngineOpenAI)
	}
}
