package match

import (
	"strings"

	"github.com/ppiankov/jorfcheck/internal/model"
)

// Default thresholds. Surnames are held to a stricter bar because they rarely
// share long substrings with unrelated decree text.
const (
	DefaultSurnameThreshold   = 90
	DefaultGivenNameThreshold = 80
)

// Matcher finds the line of a document that names a person
type Matcher struct {
	scorer             Scorer
	surnameThreshold   int
	givenNameThreshold int
}

// NewMatcher creates a matcher. A line matches when the surname score is
// strictly above surnameThreshold and the given-name score strictly above
// givenNameThreshold.
func NewMatcher(scorer Scorer, surnameThreshold, givenNameThreshold int) *Matcher {
	if scorer == nil {
		scorer = ScorerFunc(PartialRatio)
	}
	return &Matcher{
		scorer:             scorer,
		surnameThreshold:   surnameThreshold,
		givenNameThreshold: givenNameThreshold,
	}
}

// DefaultMatcher returns a partial-ratio matcher with the 90/80 thresholds
func DefaultMatcher() *Matcher {
	return NewMatcher(nil, DefaultSurnameThreshold, DefaultGivenNameThreshold)
}

// NewMatcherFromConfig builds a matcher from the match section of the config
func NewMatcherFromConfig(cfg model.MatchConfig) (*Matcher, error) {
	scorer, err := NewScorer(cfg.Scorer)
	if err != nil {
		return nil, err
	}
	return NewMatcher(scorer, cfg.SurnameThreshold, cfg.GivenNameThreshold), nil
}

// Score returns the surname and given-name scores for a single line.
// Names are expected to be normalized already; the line is upper-cased here.
func (m *Matcher) Score(surname, givenName, line string) (int, int) {
	upper := Upper(line)
	return m.scorer.Score(surname, upper), m.scorer.Score(givenName, upper)
}

// Accepts reports whether both scores clear their thresholds
func (m *Matcher) Accepts(surnameScore, givenNameScore int) bool {
	return surnameScore > m.surnameThreshold && givenNameScore > m.givenNameThreshold
}

// FindLine returns the first line of text, in document order, that matches
// both names. The line is returned verbatim.
func (m *Matcher) FindLine(surname, givenName, text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		upper := Upper(line)
		if m.scorer.Score(surname, upper) <= m.surnameThreshold {
			continue
		}
		if m.scorer.Score(givenName, upper) <= m.givenNameThreshold {
			continue
		}
		return line, true
	}
	return "", false
}
