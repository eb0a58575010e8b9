package pdftext

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ppiankov/jorfcheck/internal/pdftext/pdftest"
)

// fakeBinary writes an executable shell script standing in for pdftoppm
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "pdftoppm")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	return path
}

func TestRasterizer_PagesInOrder(t *testing.T) {
	bin := fakeBinary(t, `for last; do :; done
printf 'ten' > "$last-10.png"
printf 'one' > "$last-01.png"
printf 'two' > "$last-02.png"
`)

	pages, err := NewRasterizer(bin, 200).Rasterize(context.Background(), pdftest.Build(nil))
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}

	want := []struct {
		num  int
		data string
	}{{1, "one"}, {2, "two"}, {10, "ten"}}
	for i, w := range want {
		if pages[i].Number != w.num || string(pages[i].PNG) != w.data {
			t.Errorf("page %d: got (%d, %q), want (%d, %q)", i, pages[i].Number, pages[i].PNG, w.num, w.data)
		}
	}
}

func TestRasterizer_PassesResolution(t *testing.T) {
	bin := fakeBinary(t, `[ "$1" = "-r" ] && [ "$2" = "300" ] && [ "$3" = "-png" ] || exit 3
for last; do :; done
printf 'ok' > "$last-1.png"
`)

	pages, err := NewRasterizer(bin, 300).Rasterize(context.Background(), []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
}

func TestRasterizer_CommandFails(t *testing.T) {
	bin := fakeBinary(t, "echo \"Syntax Error: Couldn't read xref table\" >&2\nexit 1\n")

	if _, err := NewRasterizer(bin, 200).Rasterize(context.Background(), []byte("garbage")); err == nil {
		t.Fatal("expected an error from a failing pdftoppm")
	}
}

func TestRasterizer_NoOutput(t *testing.T) {
	bin := fakeBinary(t, "exit 0\n")

	_, err := NewRasterizer(bin, 200).Rasterize(context.Background(), []byte("%PDF-1.4"))
	if err != ErrNoPages {
		t.Fatalf("expected ErrNoPages, got %v", err)
	}
}
