// Package app contains application services and port definitions for the humanizer context.
package app

import (
	"context"

	"github.com/halilatilla/web3-error-humanizer/business/humanizer/domain"
)

// ExplainRequest carries everything an AI backend needs to rewrite a raw
// error message for end users.
type ExplainRequest struct {
	// RawMessage is the extracted technical error message.
	RawMessage string
	// Context optionally describes the transaction that failed.
	Context domain.Context
	// WordBudget caps the length of the generated explanation.
	WordBudget int
}

// AIBackend defines the interface for AI completion providers used when no
// local pattern matches.
type AIBackend interface {
	// Explain generates a short, user-friendly explanation of the raw
	// error message.
	Explain(ctx context.Context, req ExplainRequest) (string, error)
}
