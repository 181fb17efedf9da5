package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind classifies a dictionary key after normalization. The kind decides
// which lookup structures the key participates in.
type Kind int

const (
	// KindPhrase is any key eligible for both exact and substring matching.
	KindPhrase Kind = iota
	// KindNumeric is an integer code (possibly negative), e.g. "4001" or
	// "-32603". Matched exactly only.
	KindNumeric
	// KindShortToken is a short ambiguous token (normalized length < 4, no
	// separators), e.g. "MEV". Matched exactly only; substring matching on
	// tokens this short produces unacceptable false positives.
	KindShortToken
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindShortToken:
		return "short-token"
	default:
		return "phrase"
	}
}

// PatternEntry is one indexed dictionary key. Immutable after index build.
type PatternEntry struct {
	// Key is the dictionary key as declared, reported on match.
	Key string
	// NormalizedKey is the form used for all comparisons.
	NormalizedKey string
	// Message is the human-readable explanation returned on match.
	Message string
	// Kind is a pure function of NormalizedKey, computed once at build time.
	Kind Kind
}

var numericKey = regexp.MustCompile(`^-?\d+$`)

const shortTokenMax = 4 // normalized length below this is ambiguous

func classify(normalizedKey string) Kind {
	if numericKey.MatchString(normalizedKey) {
		return KindNumeric
	}
	if utf8.RuneCountInString(normalizedKey) < shortTokenMax &&
		!strings.ContainsAny(normalizedKey, ":._- ") {
		return KindShortToken
	}
	return KindPhrase
}
