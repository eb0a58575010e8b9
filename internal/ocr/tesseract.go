package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// TesseractEngine runs the tesseract command line tool once per page, feeding
// the image on stdin and reading the text from stdout.
type TesseractEngine struct {
	binary      string
	languages   []string
	tessdataDir string
}

// NewTesseractEngine creates an engine for the tesseract binary at path
func NewTesseractEngine(path string, languages []string, tessdataDir string) *TesseractEngine {
	if path == "" {
		path = "tesseract"
	}
	return &TesseractEngine{
		binary:      path,
		languages:   append([]string(nil), languages...),
		tessdataDir: tessdataDir,
	}
}

// Name returns the engine name
func (e *TesseractEngine) Name() string { return EngineTesseract }

// Binary returns the configured tesseract path
func (e *TesseractEngine) Binary() string { return e.binary }

// Recognize performs OCR on one page image
func (e *TesseractEngine) Recognize(ctx context.Context, img Image) (string, error) {
	cmd := exec.CommandContext(ctx, e.binary, e.args()...)
	cmd.Stdin = bytes.NewReader(img.PNG)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func (e *TesseractEngine) args() []string {
	args := []string{"stdin", "stdout"}
	if len(e.languages) > 0 {
		args = append(args, "-l", strings.Join(e.languages, "+"))
	}
	if e.tessdataDir != "" {
		args = append(args, "--tessdata-dir", e.tessdataDir)
	}
	return args
}
