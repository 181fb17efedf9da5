package domain

import (
	"sort"

	"github.com/halilatilla/web3-error-humanizer/internal/dictionary"
)

// Index holds the lookup structures built once from a dictionary snapshot.
// It is immutable after construction and safe for concurrent queries without
// coordination. Later mutation of the source dictionary is not observed;
// rebuilding is an explicit BuildIndex call.
type Index struct {
	exact      map[string]PatternEntry
	substrings []PatternEntry
}

// BuildIndex classifies and indexes a declaration-ordered entry list.
// Keys that normalize to the same form collide in the exact table and the
// later declaration wins. Keys that normalize to empty are skipped.
func BuildIndex(entries []dictionary.Entry) *Index {
	idx := &Index{
		exact: make(map[string]PatternEntry, len(entries)),
	}

	for _, e := range entries {
		nk := Normalize(e.Key)
		if nk == "" {
			continue
		}

		entry := PatternEntry{
			Key:           e.Key,
			NormalizedKey: nk,
			Message:       e.Message,
			Kind:          classify(nk),
		}

		// Last declaration wins on normalized-key collisions.
		prior, collided := idx.exact[nk]
		idx.exact[nk] = entry

		if entry.Kind != KindPhrase {
			continue
		}
		if collided && prior.Kind == KindPhrase {
			// Replace in place to keep the first declaration's position
			// as the tie-break slot.
			for i := range idx.substrings {
				if idx.substrings[i].NormalizedKey == nk {
					idx.substrings[i] = entry
					break
				}
			}
			continue
		}
		idx.substrings = append(idx.substrings, entry)
	}

	// Longest pattern first; stable so declaration order breaks ties.
	sort.SliceStable(idx.substrings, func(i, j int) bool {
		return len(idx.substrings[i].NormalizedKey) > len(idx.substrings[j].NormalizedKey)
	})

	return idx
}

// Len returns the number of indexed patterns.
func (x *Index) Len() int {
	return len(x.exact)
}

// HasKey reports whether the raw string, after normalization, is an indexed
// key. The extractor uses this to recognize RPC code fields.
func (x *Index) HasKey(raw string) bool {
	if x == nil {
		return false
	}
	_, ok := x.exact[Normalize(raw)]
	return ok
}
