package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ppiankov/jorfcheck/internal/model"
)

// User-facing messages, shared by the terminal and web front ends
const (
	MsgMissingNames = "Veuillez entrer un nom et un prénom."
	MsgSearching    = "Recherche en cours dans le Journal Officiel..."
	MsgFound        = "✅ Personne trouvée dans un décret de naturalisation !"
	MsgNotFound     = "❌ Personne non trouvée dans les documents analysés."
	LabelExcerpt    = "Extrait trouvé :"
	LabelSourceLink = "📄 Voir le Journal Officiel"
)

// Renderer writes verification results
type Renderer struct {
	w       io.Writer
	verbose bool
}

// NewRenderer creates a renderer writing to w. Verbose output adds the
// per-document diagnostics.
func NewRenderer(w io.Writer, verbose bool) *Renderer {
	return &Renderer{w: w, verbose: verbose}
}

// RenderSummary prints the success or not-found panel
func (r *Renderer) RenderSummary(v *model.Verification) error {
	var b strings.Builder

	if v.Found {
		fmt.Fprintln(&b, MsgFound)
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, LabelExcerpt)
		fmt.Fprintf(&b, "    %s\n", v.Line)
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "%s : %s\n", LabelSourceLink, v.URL)
	} else {
		fmt.Fprintln(&b, MsgNotFound)
	}

	if r.verbose {
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "Outcome:    %s\n", v.Outcome)
		fmt.Fprintf(&b, "Searched:   %s %s (%d)\n", v.Surname, v.GivenName, v.Year)
		fmt.Fprintf(&b, "Candidates: %d\n", len(v.Candidates))
		if v.DiscoveryError != "" {
			fmt.Fprintf(&b, "Discovery:  %s\n", v.DiscoveryError)
		}
		for _, a := range v.Attempts {
			switch {
			case a.Failed():
				fmt.Fprintf(&b, "  ✗ %s: %s\n", a.URL, a.Error)
			case a.Matched:
				fmt.Fprintf(&b, "  ✓ %s [%s, %d pages]\n", a.URL, a.Source, a.Pages)
			default:
				fmt.Fprintf(&b, "  · %s [%s, %d pages, %d chars]\n", a.URL, a.Source, a.Pages, a.Chars)
			}
		}
		fmt.Fprintf(&b, "Duration:   %s\n", v.Duration.Round(time.Millisecond))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// RenderJSON writes the verification as indented JSON
func (r *Renderer) RenderJSON(v *model.Verification) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
