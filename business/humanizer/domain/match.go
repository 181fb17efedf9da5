package domain

import "strings"

// MatchResult reports which pattern matched and the message it carries.
type MatchResult struct {
	MatchedKey string
	Message    string
}

// Match resolves a raw message against the index under the precedence
// policy: exact lookup first (covers numeric codes and exact phrases in one
// step), then the length-descending substring scan over phrase patterns.
// Absence of a match is a normal return, never an error.
func (x *Index) Match(rawMessage string) (MatchResult, bool) {
	if x == nil {
		return MatchResult{}, false
	}

	nm := Normalize(rawMessage)
	if nm == "" {
		return MatchResult{}, false
	}

	if e, ok := x.exact[nm]; ok {
		return MatchResult{MatchedKey: e.Key, Message: e.Message}, true
	}

	for _, e := range x.substrings {
		if strings.Contains(nm, e.NormalizedKey) {
			return MatchResult{MatchedKey: e.Key, Message: e.Message}, true
		}
	}

	return MatchResult{}, false
}
