package domain

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "INSUFFICIENT_FUNDS", "insufficient_funds"},
		{"trims", "  nonce too low  ", "nonce too low"},
		{"collapses_whitespace", "nonce \t\n too   low", "nonce too low"},
		{"strips_diacritics", "Tränsäctión féiled", "transaction feiled"},
		{"keeps_colon_separator", "Ownable: caller is not the owner", "ownable: caller is not the owner"},
		{"keeps_double_colon", "TransferHelper::transferFrom", "transferhelper::transferfrom"},
		{"keeps_minus_for_codes", "-32603", "-32603"},
		{"drops_punctuation", "execution reverted!!! (call)", "execution reverted call"},
		{"drops_emoji", "failed ❌ badly", "failed badly"},
		{"empty", "", ""},
		{"only_symbols", "(((!!!)))", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"UniswapV2Router: EXPIRED",
		"  MÉV   protection\ttriggered!! ",
		"-32000",
		"insufficient funds for gas * price + value",
		"",
		"(((!!!)))",
		"Tränsäctión  féiled ❌",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
