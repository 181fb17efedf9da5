package domain

// Source identifies which path produced a humanized message.
type Source string

const (
	// SourceLocal means a static dictionary pattern matched.
	SourceLocal Source = "local"
	// SourceAI means the generative backend produced the message.
	SourceAI Source = "ai"
	// SourceFallback means neither path succeeded and the configured static
	// fallback message was returned.
	SourceFallback Source = "fallback"
)

// HumanizedResult is the facade's detailed output, allocated fresh per call.
type HumanizedResult struct {
	// Message is the human-readable explanation.
	Message string `json:"message"`
	// Source tags which path produced Message.
	Source Source `json:"source"`
	// MatchedKey is the dictionary key that matched, for SourceLocal only.
	MatchedKey string `json:"matchedKey,omitempty"`
	// RawMessage is the extracted raw message the resolution worked from.
	RawMessage string `json:"rawMessage"`
}
