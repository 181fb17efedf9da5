package openai

import (
	"fmt"
	"strings"

	"github.com/halilatilla/web3-error-humanizer/business/humanizer/app"
)

// systemPrompt frames every completion request. The model must answer with
// the explanation only, no preamble or markdown.
const systemPrompt = "You are a web3 UX writer. You turn raw blockchain and wallet error " +
	"messages into short, calm, plain-English explanations for non-technical users. " +
	"Tell the user what happened and, when possible, what to do next. " +
	"Never include hex data, stack traces, jargon, or apologies. " +
	"Respond with the explanation text only."

// maxRawMessageLen bounds how much of the raw error is sent to the model.
// Provider errors sometimes embed entire calldata blobs.
const maxRawMessageLen = 600

// buildPrompt renders the user message for a completion request.
func buildPrompt(req app.ExplainRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Explain this web3 error in at most %d words:\n\n", req.WordBudget)
	fmt.Fprintf(&b, "Error: %s\n", truncate(req.RawMessage, maxRawMessageLen))

	hctx := req.Context
	if !hctx.IsZero() {
		b.WriteString("\nTransaction context:\n")
		if hctx.Action != "" {
			fmt.Fprintf(&b, "- action: %s\n", hctx.Action)
		}
		if hctx.FromToken != "" && hctx.ToToken != "" {
			fmt.Fprintf(&b, "- swap: %s -> %s\n", hctx.FromToken, hctx.ToToken)
		} else if hctx.FromToken != "" {
			fmt.Fprintf(&b, "- token: %s\n", hctx.FromToken)
		}
		if !hctx.Amount.IsZero() {
			fmt.Fprintf(&b, "- amount: %s\n", hctx.Amount.String())
		}
		if !hctx.SlippageBps.IsZero() {
			fmt.Fprintf(&b, "- slippage tolerance: %s bps\n", hctx.SlippageBps.String())
		}
		if hctx.Network != "" {
			fmt.Fprintf(&b, "- network: %s\n", hctx.Network)
		}
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
