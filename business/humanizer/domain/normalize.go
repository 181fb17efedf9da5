// Package domain contains the pure error-matching core: normalization,
// pattern classification, index construction, matching and raw-message
// extraction. Nothing in this package performs I/O.
package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so accented
// variants compare equal to their plain dictionary key.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	// Keep word characters, whitespace and the separators ": . _ -";
	// these separators carry meaning in keys like
	// "Ownable: caller is not the owner" or "TransferHelper::transferFrom".
	disallowed = regexp.MustCompile(`[^\w\s:._-]`)
	spaceRuns  = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a string for pattern comparison: trims, lowercases,
// strips diacritics, removes everything but word characters and the key
// separators, and collapses whitespace runs to a single space.
// Total and idempotent; empty input yields empty output.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = disallowed.ReplaceAllString(s, "")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
