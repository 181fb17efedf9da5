package domain

import (
	"sync"
	"testing"

	"github.com/halilatilla/web3-error-humanizer/internal/dictionary"
)

func TestBuildIndexOrdersSubstringsByLength(t *testing.T) {
	idx := BuildIndex([]dictionary.Entry{
		{Key: "EXPIRED", Message: "generic"},
		{Key: "UniswapV2Router: EXPIRED", Message: "router"},
		{Key: "nonce too low", Message: "nonce"},
	})

	if len(idx.substrings) != 3 {
		t.Fatalf("substrings = %d, want 3", len(idx.substrings))
	}
	if idx.substrings[0].Key != "UniswapV2Router: EXPIRED" {
		t.Errorf("longest pattern not first: %q", idx.substrings[0].Key)
	}
	if idx.substrings[2].Key != "EXPIRED" {
		t.Errorf("shortest pattern not last: %q", idx.substrings[2].Key)
	}
}

func TestBuildIndexStableForEqualLengths(t *testing.T) {
	idx := BuildIndex([]dictionary.Entry{
		{Key: "aaaa bbbb", Message: "first"},
		{Key: "cccc dddd", Message: "second"},
	})

	// Equal normalized length: declaration order preserved.
	if idx.substrings[0].Message != "first" || idx.substrings[1].Message != "second" {
		t.Errorf("tie-break broke declaration order: %q then %q",
			idx.substrings[0].Message, idx.substrings[1].Message)
	}
}

func TestBuildIndexLastDeclarationWinsOnCollision(t *testing.T) {
	idx := BuildIndex([]dictionary.Entry{
		{Key: "Insufficient Funds", Message: "older"},
		{Key: "INSUFFICIENT FUNDS", Message: "newer"},
	})

	if idx.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after collision", idx.Len())
	}

	res, ok := idx.Match("insufficient funds")
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Message != "newer" {
		t.Errorf("Message = %q, want the later declaration", res.Message)
	}
	if res.MatchedKey != "INSUFFICIENT FUNDS" {
		t.Errorf("MatchedKey = %q, want the later declaration's key", res.MatchedKey)
	}

	// The substring list must not retain a stale duplicate.
	if len(idx.substrings) != 1 {
		t.Errorf("substrings = %d, want 1", len(idx.substrings))
	}
}

func TestBuildIndexSkipsEmptyKeys(t *testing.T) {
	idx := BuildIndex([]dictionary.Entry{
		{Key: "(((", Message: "noise"},
		{Key: "", Message: "empty"},
		{Key: "real pattern", Message: "kept"},
	})

	if idx.Len() != 1 {
		t.Errorf("Len = %d, want 1", idx.Len())
	}
	if _, ok := idx.Match("anything at all"); ok {
		t.Error("an empty normalized key leaked into substring matching")
	}
}

func TestBuildIndexExcludesNonPhraseFromSubstrings(t *testing.T) {
	idx := BuildIndex([]dictionary.Entry{
		{Key: "4001", Message: "code"},
		{Key: "MEV", Message: "short"},
		{Key: "execution reverted", Message: "phrase"},
	})

	if len(idx.substrings) != 1 {
		t.Fatalf("substrings = %d, want only the phrase entry", len(idx.substrings))
	}
	if idx.substrings[0].Kind != KindPhrase {
		t.Errorf("substring entry kind = %v, want KindPhrase", idx.substrings[0].Kind)
	}
}

func TestHasKey(t *testing.T) {
	idx := BuildIndex([]dictionary.Entry{{Key: "4001", Message: "rejected"}})

	if !idx.HasKey("4001") {
		t.Error("HasKey(4001) = false")
	}
	if idx.HasKey("9999") {
		t.Error("HasKey(9999) = true")
	}

	var nilIdx *Index
	if nilIdx.HasKey("4001") {
		t.Error("nil index HasKey = true")
	}
}

func TestMatchConcurrent(t *testing.T) {
	idx := BuildIndex([]dictionary.Entry{
		{Key: "4001", Message: "rejected"},
		{Key: "UniswapV2Router: EXPIRED", Message: "deadline passed"},
		{Key: "insufficient funds", Message: "not enough balance"},
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, ok := idx.Match("execution reverted: UniswapV2Router: EXPIRED"); !ok {
					t.Error("phrase match lost under concurrent reads")
					return
				}
				if res, ok := idx.Match("4001"); !ok || res.Message != "rejected" {
					t.Error("exact match lost under concurrent reads")
					return
				}
				if _, ok := idx.Match("no such pattern anywhere"); ok {
					t.Error("phantom match under concurrent reads")
					return
				}
			}
		}()
	}
	wg.Wait()
}
