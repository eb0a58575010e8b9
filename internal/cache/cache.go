package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Key derives a memo key from a document URL. Surrounding whitespace is
// ignored so hrefs scraped with stray spaces collapse onto the same entry.
func Key(url string) string {
	hash := sha256.Sum256([]byte(strings.TrimSpace(url)))
	return "jorfcheck:v1:" + hex.EncodeToString(hash[:])
}
