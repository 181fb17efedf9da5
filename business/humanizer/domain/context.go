package domain

import "github.com/shopspring/decimal"

// Context carries optional, advisory transaction details injected into the
// generative prompt so the explanation can reference what the user was
// doing. The local matcher never consults it.
type Context struct {
	// FromToken and ToToken are asset symbols, e.g. "ETH", "USDC".
	FromToken string
	ToToken   string
	// Amount is the input amount of the attempted action.
	Amount decimal.Decimal
	// SlippageBps is the slippage tolerance in basis points.
	SlippageBps decimal.Decimal
	// Network is the chain name, e.g. "ethereum", "arbitrum".
	Network string
	// Action is a short verb phrase, e.g. "swap", "bridge", "approve".
	Action string
}

// IsZero reports whether no context field is set.
func (c *Context) IsZero() bool {
	return c == nil || (c.FromToken == "" && c.ToToken == "" &&
		c.Amount.IsZero() && c.SlippageBps.IsZero() &&
		c.Network == "" && c.Action == "")
}
