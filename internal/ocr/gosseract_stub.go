//go:build !gosseract

package ocr

import "fmt"

// NewGosseractEngine reports that the binary was built without libtesseract
func NewGosseractEngine(languages []string, tessdataDir string) (Engine, error) {
	return nil, fmt.Errorf("%w: rebuild with -tags gosseract or use the %q engine", ErrEngineUnavailable, EngineTesseract)
}
