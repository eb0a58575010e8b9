package match

import (
	"fmt"
	"math"

	"github.com/agnivade/levenshtein"
	"github.com/pmezard/go-difflib/difflib"
)

// Scorer rates how well needle appears inside haystack on a 0-100 scale
type Scorer interface {
	Score(needle, haystack string) int
}

// ScorerFunc adapts a plain function to the Scorer interface
type ScorerFunc func(a, b string) int

// Score calls f(a, b)
func (f ScorerFunc) Score(a, b string) int {
	return f(a, b)
}

// Scorer names accepted in configuration
const (
	ScorerPartialRatio = "partial_ratio"
	ScorerLevenshtein  = "levenshtein"
)

// NewScorer returns the scorer registered under name. An empty name selects partial_ratio.
func NewScorer(name string) (Scorer, error) {
	switch name {
	case "", ScorerPartialRatio:
		return ScorerFunc(PartialRatio), nil
	case ScorerLevenshtein:
		return ScorerFunc(LevenshteinPartial), nil
	default:
		return nil, fmt.Errorf("unknown scorer %q (want %s or %s)", name, ScorerPartialRatio, ScorerLevenshtein)
	}
}

// PartialRatio scores the best alignment of the shorter string against a
// same-length window of the longer one. Windows are anchored on the
// difflib matching blocks between the two strings.
func PartialRatio(s1, s2 string) int {
	if s1 == s2 {
		return 100
	}
	if s1 == "" || s2 == "" {
		return 0
	}

	shorter, longer := splitRunes(s1), splitRunes(s2)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0.0
	blocks := difflib.NewMatcher(shorter, longer).GetMatchingBlocks()
	for _, block := range blocks {
		start := max(block.B-block.A, 0)
		end := min(start+len(shorter), len(longer))

		ratio := difflib.NewMatcher(shorter, longer[start:end]).Ratio()
		if ratio > 0.995 {
			return 100
		}
		best = max(best, ratio)
	}

	return percent(best)
}

// LevenshteinPartial slides a window the length of the shorter string over
// the longer one and keeps the best 1 - distance/length.
func LevenshteinPartial(s1, s2 string) int {
	if s1 == s2 {
		return 100
	}
	if s1 == "" || s2 == "" {
		return 0
	}

	shorter, longer := []rune(s1), []rune(s2)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	needle := string(shorter)
	n := len(shorter)
	best := 0.0
	for start := 0; start+n <= len(longer); start++ {
		d := levenshtein.ComputeDistance(needle, string(longer[start:start+n]))
		best = max(best, 1-float64(d)/float64(n))
		if best == 1 {
			break
		}
	}

	return percent(best)
}

// percent converts a 0-1 ratio to an integer percentage, rounding halves to even.
func percent(ratio float64) int {
	return int(math.RoundToEven(100 * ratio))
}

// splitRunes turns s into one-rune strings so difflib compares characters.
func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
