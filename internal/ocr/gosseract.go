//go:build gosseract

package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// GosseractEngine calls libtesseract in-process through gosseract. It is only
// compiled with the gosseract build tag because it needs cgo and the
// tesseract/leptonica headers.
type GosseractEngine struct {
	languages   []string
	tessdataDir string
}

// NewGosseractEngine creates an in-process tesseract engine
func NewGosseractEngine(languages []string, tessdataDir string) (Engine, error) {
	return &GosseractEngine{
		languages:   append([]string(nil), languages...),
		tessdataDir: tessdataDir,
	}, nil
}

// Name returns the engine name
func (e *GosseractEngine) Name() string { return EngineGosseract }

// Recognize performs OCR on one page image with a fresh client
func (e *GosseractEngine) Recognize(ctx context.Context, img Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if e.tessdataDir != "" {
		if err := client.SetTessdataPrefix(e.tessdataDir); err != nil {
			return "", fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if err := client.SetImageFromBytes(img.PNG); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
