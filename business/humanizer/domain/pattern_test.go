package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		key  string
		want Kind
	}{
		{"4001", KindNumeric},
		{"-32603", KindNumeric},
		{"0", KindNumeric},
		{"mev", KindShortToken},
		{"stf", KindShortToken},
		{"k", KindShortToken},
		{"a:b", KindPhrase},   // separator keeps it out of the short class
		{"a_b", KindPhrase},
		{"lock", KindPhrase},  // 4 runes, long enough
		{"expired", KindPhrase},
		{"uniswapv2router: expired", KindPhrase},
		{"4001x", KindPhrase}, // not purely numeric, not short
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := classify(tt.key); got != tt.want {
				t.Errorf("classify(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
