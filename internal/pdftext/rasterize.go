package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrNoPages is returned when rendering produced no page images
var ErrNoPages = errors.New("rasterizer produced no pages")

// PageImage is one rendered page
type PageImage struct {
	Number int    // 1-based page number
	PNG    []byte // PNG-encoded bitmap
}

// Rasterizer renders every page of a PDF to PNG using poppler's pdftoppm
type Rasterizer struct {
	binary string
	dpi    int
}

// NewRasterizer creates a rasterizer that runs the pdftoppm binary at path
func NewRasterizer(binary string, dpi int) *Rasterizer {
	if binary == "" {
		binary = "pdftoppm"
	}
	if dpi <= 0 {
		dpi = 200
	}
	return &Rasterizer{binary: binary, dpi: dpi}
}

// Rasterize renders data and returns the pages in order. Temporary files are
// removed before returning.
func (r *Rasterizer) Rasterize(ctx context.Context, data []byte) ([]PageImage, error) {
	dir, err := os.MkdirTemp("", "jorfcheck-pages-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	input := filepath.Join(dir, "document.pdf")
	if err := os.WriteFile(input, data, 0o600); err != nil {
		return nil, fmt.Errorf("write temp pdf: %w", err)
	}

	prefix := filepath.Join(dir, "page")
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, "-r", strconv.Itoa(r.dpi), "-png", input, prefix)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run %s: %w: %s", filepath.Base(r.binary), err, strings.TrimSpace(stderr.String()))
	}

	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if len(matches) == 0 {
		return nil, ErrNoPages
	}

	pages := make([]PageImage, 0, len(matches))
	for _, path := range matches {
		num, ok := pageNumber(prefix, path)
		if !ok {
			continue
		}
		img, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read page %d: %w", num, err)
		}
		pages = append(pages, PageImage{Number: num, PNG: img})
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Number < pages[j].Number })
	return pages, nil
}

// pageNumber parses the page number pdftoppm embeds in "<prefix>-<n>.png".
// Numbers are zero padded to a width that depends on the page count.
func pageNumber(prefix, path string) (int, bool) {
	s := strings.TrimSuffix(strings.TrimPrefix(path, prefix+"-"), ".png")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
