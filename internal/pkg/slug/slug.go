// Package slug generates URL-friendly slugs from titles and names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make converts a title to a slug: accents are folded to ASCII, the result is
// lowercased, runs of non-alphanumeric characters collapse to a single hyphen,
// and leading/trailing hyphens are trimmed. Deterministic and idempotent.
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, s)

	folded = strings.ToLower(folded)
	folded = nonAlphanumeric.ReplaceAllString(folded, "-")
	return strings.Trim(folded, "-")
}

// IsValid reports whether s is already in canonical slug form.
func IsValid(s string) bool {
	return s != "" && Make(s) == s
}
