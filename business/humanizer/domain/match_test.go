package domain

import (
	"testing"

	"github.com/halilatilla/web3-error-humanizer/internal/dictionary"
)

func testIndex() *Index {
	return BuildIndex([]dictionary.Entry{
		{Key: "4001", Message: "user rejected"},
		{Key: "-32603", Message: "internal rpc error"},
		{Key: "MEV", Message: "mev protection"},
		{Key: "EXPIRED", Message: "deadline passed"},
		{Key: "UniswapV2Router: EXPIRED", Message: "router deadline passed"},
		{Key: "INSUFFICIENT_FUNDS", Message: "not enough funds"},
		{Key: "execution reverted", Message: "contract rejected"},
	})
}

func TestMatchExactBeatsSubstring(t *testing.T) {
	idx := testIndex()

	res, ok := idx.Match("UniswapV2Router: EXPIRED")
	if !ok {
		t.Fatal("expected a match")
	}
	if res.MatchedKey != "UniswapV2Router: EXPIRED" {
		t.Errorf("MatchedKey = %q, want the exact (longer) pattern", res.MatchedKey)
	}
}

func TestMatchLongestSubstringWins(t *testing.T) {
	idx := testIndex()

	res, ok := idx.Match("reverted: UniswapV2Router: EXPIRED at block 19000000")
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Message != "router deadline passed" {
		t.Errorf("Message = %q, want the more specific router pattern", res.Message)
	}
}

func TestMatchNumericCodeExactOnly(t *testing.T) {
	idx := testIndex()

	res, ok := idx.Match("4001")
	if !ok || res.MatchedKey != "4001" {
		t.Fatalf("Match(4001) = %+v, %v; want the numeric entry", res, ok)
	}

	// A message merely containing the digits must not hit the code entry.
	if res, ok := idx.Match("gas price 4001 gwei is absurd"); ok {
		t.Errorf("substring digits matched numeric code: %+v", res)
	}
}

func TestMatchShortTokenExactOnly(t *testing.T) {
	idx := testIndex()

	res, ok := idx.Match("MEV")
	if !ok || res.Message != "mev protection" {
		t.Fatalf("Match(MEV) = %+v, %v; want exact short-token hit", res, ok)
	}

	if res, ok := idx.Match("transaction removed by the devs"); ok {
		t.Errorf("short token matched inside unrelated text: %+v", res)
	}
}

func TestMatchCaseAndDiacriticInsensitive(t *testing.T) {
	idx := testIndex()

	for _, raw := range []string{
		"insufficient_funds",
		"INSUFFICIENT_FUNDS",
		"ÍNSUFFÍCIENT_FUNDS",
	} {
		res, ok := idx.Match(raw)
		if !ok {
			t.Errorf("Match(%q): no match", raw)
			continue
		}
		if res.Message != "not enough funds" {
			t.Errorf("Match(%q) = %q, want uniform resolution", raw, res.Message)
		}
	}
}

func TestMatchAbsent(t *testing.T) {
	idx := testIndex()

	if res, ok := idx.Match("some entirely novel failure"); ok {
		t.Errorf("unexpected match: %+v", res)
	}
	if _, ok := idx.Match(""); ok {
		t.Error("empty raw message matched")
	}

	var nilIdx *Index
	if _, ok := nilIdx.Match("execution reverted"); ok {
		t.Error("nil index matched")
	}
}

func TestMatchSubstringInsideLongMessage(t *testing.T) {
	idx := testIndex()

	raw := "Error: processing response error (body=..., code=SERVER_ERROR): execution reverted"
	res, ok := idx.Match(raw)
	if !ok {
		t.Fatal("expected a substring match")
	}
	if res.MatchedKey != "execution reverted" {
		t.Errorf("MatchedKey = %q, want execution reverted", res.MatchedKey)
	}
}
