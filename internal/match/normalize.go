package match

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// accentReplacer folds the accented capitals that commonly appear in French
// given names. Other diacritics (Ç, Ô, Ï, Ê, Ü...) are deliberately left alone.
var accentReplacer = strings.NewReplacer("É", "E", "È", "E", "À", "A")

// Upper returns s with full Unicode upper-case mapping applied ("ß" becomes "SS").
func Upper(s string) string {
	// A Caser keeps state between calls and must not be shared across goroutines.
	return cases.Upper(language.Und).String(s)
}

// NormalizeName upper-cases a name and replaces É, È and À with E, E and A.
func NormalizeName(name string) string {
	return accentReplacer.Replace(Upper(norm.NFC.String(name)))
}
