package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Dupont", "DUPONT"},
		{"jean", "JEAN"},
		{"Élodie", "ELODIE"},
		{"élodie", "ELODIE"},
		{"Hélène", "HELENE"},
		{"Lefèvre", "LEFEVRE"},
		{"Mathéo-Noël", "MATHEO-NOËL"},
		{"à la", "A LA"},
		{"François", "FRANÇOIS"},
		{"Gaëtan", "GAËTAN"},
		{"Jérôme", "JERÔME"},
		{"Strauß", "STRAUSS"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeName_Decomposed(t *testing.T) {
	// "E" followed by U+0301 COMBINING ACUTE ACCENT
	assert.Equal(t, "ELODIE", NormalizeName("E\u0301lodie"))
}

func TestNormalizeName_Idempotent(t *testing.T) {
	for _, name := range []string{"Dupont", "Élise", "Hélène", "Lefèvre", "Àdrien", "jean-marie", "MARTIN"} {
		once := NormalizeName(name)
		assert.Equal(t, once, NormalizeName(once), "name %q", name)
	}
}

func TestUpper(t *testing.T) {
	assert.Equal(t, "M. DUPONT JEAN NÉ LE 01/01/1990", Upper("m. Dupont Jean né le 01/01/1990"))
}
