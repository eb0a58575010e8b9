package pdftext

import (
	"errors"
	"strings"
	"testing"

	"github.com/ppiankov/jorfcheck/internal/pdftext/pdftest"
)

func TestReader_Read(t *testing.T) {
	data := pdftest.Build(
		[]string{"DECRET DU 12 MARS 2023", "M. DUPONT JEAN NE LE 01/01/1990"},
		[]string{"MME MARTIN CLAIRE NEE LE 05/06/1987"},
	)

	doc, err := NewReader().Read(data)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	if !strings.Contains(doc.Pages[0], "M. DUPONT JEAN NE LE 01/01/1990") {
		t.Errorf("page 1 missing decree line: %q", doc.Pages[0])
	}
	if !strings.Contains(doc.Pages[1], "MARTIN CLAIRE") {
		t.Errorf("page 2 missing decree line: %q", doc.Pages[1])
	}

	lines := strings.Split(doc.Text(), "\n")
	found := false
	for _, line := range lines {
		if line == "M. DUPONT JEAN NE LE 01/01/1990" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the decree line on its own line, got %q", doc.Text())
	}
}

func TestReader_RowsTopToBottom(t *testing.T) {
	doc, err := NewReader().Read(pdftest.Build([]string{"PREMIERE", "DEUXIEME", "TROISIEME"}))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	first := strings.Index(doc.Text(), "PREMIERE")
	last := strings.Index(doc.Text(), "TROISIEME")
	if first < 0 || last < 0 || first > last {
		t.Errorf("unexpected row order: %q", doc.Text())
	}
}

func TestReader_EmptyPage(t *testing.T) {
	doc, err := NewReader().Read(pdftest.Build(nil))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if strings.TrimSpace(doc.Text()) != "" {
		t.Errorf("expected no text, got %q", doc.Text())
	}
}

func TestReader_NotPDF(t *testing.T) {
	_, err := NewReader().Read([]byte("<html><body>404 Not Found</body></html>"))
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
}
