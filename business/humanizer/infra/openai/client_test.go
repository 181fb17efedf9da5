package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/halilatilla/web3-error-humanizer/business/humanizer/app"
	"github.com/halilatilla/web3-error-humanizer/business/humanizer/domain"
	"github.com/halilatilla/web3-error-humanizer/internal/apperror"
	"github.com/halilatilla/web3-error-humanizer/internal/logger"
)

// mockLogger implements logger.LoggerInterface for testing.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, args ...any)              {}
func (m *mockLogger) Info(ctx context.Context, msg string, args ...any)               {}
func (m *mockLogger) Warn(ctx context.Context, msg string, args ...any)               {}
func (m *mockLogger) Error(ctx context.Context, msg string, args ...any)              {}
func (m *mockLogger) Debugc(ctx context.Context, caller int, msg string, args ...any) {}
func (m *mockLogger) Infoc(ctx context.Context, caller int, msg string, args ...any)  {}
func (m *mockLogger) Warnc(ctx context.Context, caller int, msg string, args ...any)  {}
func (m *mockLogger) Errorc(ctx context.Context, caller int, msg string, args ...any) {}

var _ logger.LoggerInterface = (*mockLogger)(nil)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	c, err := NewClient(Config{
		APIKey:       "sk-test",
		BaseURL:      serverURL,
		RateLimitRPM: 6000,
	}, &mockLogger{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func completionResponse(content string) chatResponse {
	var resp chatResponse
	resp.Choices = []struct {
		Message chatMessage `json:"message"`
	}{
		{Message: chatMessage{Role: "assistant", Content: content}},
	}
	return resp
}

func TestExplainSuccess(t *testing.T) {
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("The network rejected your transaction because the gas price was too low."))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	got, err := c.Explain(context.Background(), app.ExplainRequest{
		RawMessage: "transaction underpriced",
		WordBudget: 50,
	})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if !strings.Contains(got, "gas price was too low") {
		t.Errorf("Explain = %q", got)
	}

	if gotReq.Model != DefaultModel {
		t.Errorf("model = %q, want default", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v, want system + user", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[1].Content, "transaction underpriced") {
		t.Errorf("user prompt missing raw message: %q", gotReq.Messages[1].Content)
	}
	if !strings.Contains(gotReq.Messages[1].Content, "50 words") {
		t.Errorf("user prompt missing word budget: %q", gotReq.Messages[1].Content)
	}
}

func TestExplainIncludesTransactionContext(t *testing.T) {
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("Prices moved before your swap confirmed."))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Explain(context.Background(), app.ExplainRequest{
		RawMessage: "UniswapV2Router: INSUFFICIENT_OUTPUT_AMOUNT",
		WordBudget: 40,
		Context: domain.Context{
			FromToken:   "ETH",
			ToToken:     "USDC",
			Amount:      decimal.NewFromFloat(1.5),
			SlippageBps: decimal.NewFromInt(50),
			Network:     "mainnet",
			Action:      "swap",
		},
	})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}

	prompt := gotReq.Messages[1].Content
	for _, want := range []string{"ETH -> USDC", "1.5", "50 bps", "mainnet", "swap"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestExplainRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"tokens"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Explain(context.Background(), app.ExplainRequest{RawMessage: "x", WordBudget: 50})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperror.IsCode(err, apperror.CodeAIRateLimited) {
		t.Errorf("code = %v, want AI_RATE_LIMITED", apperror.GetCode(err))
	}
}

func TestExplainUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Explain(context.Background(), app.ExplainRequest{RawMessage: "x", WordBudget: 50})
	if !apperror.IsCode(err, apperror.CodeAIUnauthorized) {
		t.Errorf("code = %v, want AI_UNAUTHORIZED", apperror.GetCode(err))
	}
}

func TestExplainEmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Explain(context.Background(), app.ExplainRequest{RawMessage: "x", WordBudget: 50})
	if !apperror.IsCode(err, apperror.CodeAIEmptyResponse) {
		t.Errorf("code = %v, want AI_EMPTY_RESPONSE", apperror.GetCode(err))
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{}, &mockLogger{})
	if !apperror.IsCode(err, apperror.CodeConfigurationError) {
		t.Errorf("code = %v, want CONFIGURATION_ERROR", apperror.GetCode(err))
	}
}
