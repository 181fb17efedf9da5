package dictionary

import "testing"

func TestSetPreservesDeclarationOrder(t *testing.T) {
	d := New()
	d.Set("a", "1")
	d.Set("b", "2")
	d.Set("c", "3")
	d.Set("b", "2-replaced")

	entries := d.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len = %d, want 3", len(entries))
	}

	wantKeys := []string{"a", "b", "c"}
	for i, k := range wantKeys {
		if entries[i].Key != k {
			t.Errorf("entries[%d].Key = %q, want %q", i, entries[i].Key, k)
		}
	}

	if msg, _ := d.Get("b"); msg != "2-replaced" {
		t.Errorf("Get(b) = %q, want replaced message", msg)
	}
}

func TestEntriesReturnsSnapshot(t *testing.T) {
	d := New()
	d.Set("a", "1")

	snapshot := d.Entries()
	d.Set("b", "2")

	if len(snapshot) != 1 {
		t.Errorf("snapshot grew after mutation: len = %d", len(snapshot))
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
}

func TestMergeArgumentWins(t *testing.T) {
	base := FromEntries([]Entry{{"a", "base-a"}, {"b", "base-b"}})
	extra := FromEntries([]Entry{{"b", "extra-b"}, {"c", "extra-c"}})

	merged := base.Merge(extra)

	if merged.Len() != 3 {
		t.Fatalf("merged Len = %d, want 3", merged.Len())
	}
	if msg, _ := merged.Get("b"); msg != "extra-b" {
		t.Errorf("merged Get(b) = %q, want extra-b", msg)
	}

	// The receiver must be untouched.
	if msg, _ := base.Get("b"); msg != "base-b" {
		t.Errorf("base mutated by Merge: Get(b) = %q", msg)
	}
}

func TestDefaultIsACopy(t *testing.T) {
	a := Default()
	b := Default()

	a.Set("4001", "overridden")

	if msg, _ := b.Get("4001"); msg == "overridden" {
		t.Error("mutating one Default() copy leaked into another")
	}
}

func TestDefaultHasNoDuplicateLiteralKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range defaultEntries {
		if seen[e.Key] {
			t.Errorf("duplicate literal key %q in default table", e.Key)
		}
		seen[e.Key] = true
		if e.Message == "" {
			t.Errorf("key %q has empty message", e.Key)
		}
	}
}
