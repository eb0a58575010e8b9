package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"YANKEES", "NEW YORK YANKEES", 100},
		{"NEW YORK METS", "NEW YORK YANKEES", 69},
		{"DUPONT", "M. DUPONT JEAN NE LE 01/01/1990", 100},
		{"JEAN", "M. DUPONT JEAN NE LE 01/01/1990", 100},
		{"DUPONT", "LISTE VIDE", 25},
		{"JEAN", "LISTE VIDE", 25},
		{"DUPONT", "M. DUPOND JEAN", 83},
		{"JEAN", "M. DUPONT JAEN", 75},
		{"HELENE", "MME HÉLÈNE MARTIN", 67},
		{"LEFÈVRE", "LEFEVRE", 86},
		{"DUPONT", "DUPONT", 100},
		{"", "", 100},
		{"ABC", "", 0},
		{"", "ABC", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, PartialRatio(tt.a, tt.b))
		})
	}
}

func TestPartialRatio_Symmetric(t *testing.T) {
	assert.Equal(t, PartialRatio("DUPONT", "M. DUPOND JEAN"), PartialRatio("M. DUPOND JEAN", "DUPONT"))
}

func TestLevenshteinPartial(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"YANKEES", "NEW YORK YANKEES", 100},
		{"NEW YORK METS", "NEW YORK YANKEES", 69},
		{"DUPONT", "M. DUPOND JEAN", 83},
		{"JEAN", "M. DUPONT JAEN", 50},
		{"DUPONT", "M. DURAND PAUL", 50},
		{"ABC", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, LevenshteinPartial(tt.a, tt.b))
		})
	}
}

func TestNewScorer(t *testing.T) {
	for _, name := range []string{"", ScorerPartialRatio, ScorerLevenshtein} {
		s, err := NewScorer(name)
		require.NoError(t, err, "scorer %q", name)
		assert.Equal(t, 100, s.Score("JEAN", "M. DUPONT JEAN"))
	}

	_, err := NewScorer("soundex")
	assert.Error(t, err)
}
