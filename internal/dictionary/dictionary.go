// Package dictionary provides the ordered pattern-to-message table consumed
// by the humanizer's pattern index.
package dictionary

import "sync"

// Entry is a single pattern/message pair. Key is the opaque pattern as
// declared (numeric code, short token, or phrase); Message is the
// human-readable explanation returned on match.
type Entry struct {
	Key     string
	Message string
}

// Dictionary is a thread-safe, declaration-ordered pattern table.
// Order matters: when two distinct keys normalize to the same form, the
// later declaration wins at index-build time, and insertion order is the
// tie-break for equal-length substring candidates.
type Dictionary struct {
	entries []Entry
	pos     map[string]int
	mu      sync.RWMutex
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		pos: make(map[string]int),
	}
}

// FromEntries creates a dictionary from a declaration-ordered entry list.
func FromEntries(entries []Entry) *Dictionary {
	d := New()
	for _, e := range entries {
		d.Set(e.Key, e.Message)
	}
	return d
}

// Set adds a pattern or replaces the message of an existing literal key.
// Replacing keeps the key's original declaration position.
func (d *Dictionary) Set(key, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i, ok := d.pos[key]; ok {
		d.entries[i].Message = message
		return
	}
	d.pos[key] = len(d.entries)
	d.entries = append(d.entries, Entry{Key: key, Message: message})
}

// Get returns the message declared for the literal key.
func (d *Dictionary) Get(key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.pos[key]
	if !ok {
		return "", false
	}
	return d.entries[i].Message, true
}

// Len returns the number of distinct literal keys.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Entries returns a copy of the entries in declaration order. The copy is
// the snapshot an index is built from; later mutation of the dictionary is
// not observed by indexes already built.
func (d *Dictionary) Entries() []Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Merge appends another dictionary's entries on top of this one and returns
// the combined dictionary. The receiver is not modified; the argument's
// entries win on literal-key conflicts.
func (d *Dictionary) Merge(other *Dictionary) *Dictionary {
	merged := FromEntries(d.Entries())
	if other == nil {
		return merged
	}
	for _, e := range other.Entries() {
		merged.Set(e.Key, e.Message)
	}
	return merged
}
