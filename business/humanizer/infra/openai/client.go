// Package openai implements the AIBackend interface on the OpenAI chat
// completions API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/halilatilla/web3-error-humanizer/business/humanizer/app"
	"github.com/halilatilla/web3-error-humanizer/internal/apm"
	"github.com/halilatilla/web3-error-humanizer/internal/apperror"
	"github.com/halilatilla/web3-error-humanizer/internal/circuitbreaker"
	"github.com/halilatilla/web3-error-humanizer/internal/httpclient"
	"github.com/halilatilla/web3-error-humanizer/internal/logger"
	"github.com/halilatilla/web3-error-humanizer/internal/ratelimit"
)

const (
	tracerName = "openai"

	// DefaultBaseURL is the OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultModel balances cost and quality for short rewrites.
	DefaultModel = "gpt-4o-mini"

	completionsEndpoint = "/chat/completions"

	defaultMaxTokens    = 120
	defaultTimeout      = 15 * time.Second
	defaultRateLimitRPM = 60
)

// Ensure Client implements AIBackend.
var _ app.AIBackend = (*Client)(nil)

// Config holds OpenAI client configuration.
type Config struct {
	APIKey       string
	BaseURL      string        // empty = DefaultBaseURL
	Model        string        // empty = DefaultModel
	MaxTokens    int           // completion token cap
	Timeout      time.Duration // per-request timeout
	RateLimitRPM int           // client-side requests per minute
}

// Client calls the chat completions API to rewrite raw error messages.
type Client struct {
	client  httpclient.Client
	model   string
	maxTok  int
	limiter *ratelimit.Limiter
	cb      *circuitbreaker.CircuitBreaker[string]
	logger  logger.LoggerInterface
	tracer  apm.Tracer
}

// NewClient creates a new OpenAI-backed explainer.
func NewClient(cfg Config, log logger.LoggerInterface) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apperror.New(apperror.CodeConfigurationError,
			apperror.WithContext("openai api key is required"))
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTok := cfg.MaxTokens
	if maxTok <= 0 {
		maxTok = defaultMaxTokens
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rpm := cfg.RateLimitRPM
	if rpm <= 0 {
		rpm = defaultRateLimitRPM
	}

	tracer := apm.NewTracer(tracerName)

	client, err := httpclient.NewInstrumentedClient(
		httpclient.WithProviderName("openai"),
		httpclient.WithBaseURL(baseURL),
		httpclient.WithRequestTimeout(timeout),
		httpclient.WithTraceOptions(tracer.GetTracer()),
		httpclient.WithHeaders(map[string]string{
			"Authorization": "Bearer " + cfg.APIKey,
			"Content-Type":  "application/json",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &Client{
		client:  client,
		model:   model,
		maxTok:  maxTok,
		limiter: ratelimit.New(rpm),
		cb:      circuitbreaker.New[string](circuitbreaker.DefaultConfig("openai-completions")),
		logger:  log,
		tracer:  tracer,
	}, nil
}

// chatRequest is the chat completions request payload.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the chat completions response payload.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// apiError is the error envelope OpenAI returns on non-2xx responses.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Explain rewrites the raw error message as a short user-facing explanation.
func (c *Client) Explain(ctx context.Context, req app.ExplainRequest) (string, error) {
	ctx, span := c.tracer.StartSpanFromContext(ctx, "openai.explain",
		trace.WithAttributes(attribute.String("model", c.model)),
	)
	defer span.End()

	if err := c.limiter.Wait(ctx); err != nil {
		span.RecordError(err)
		return "", apperror.Wrap(err, apperror.CodeServiceTimeout, "waiting for rate limit token")
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		MaxTokens:   c.maxTok,
		Temperature: 0.2,
	}

	content, err := c.cb.Execute(func() (string, error) {
		return c.complete(ctx, body)
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	c.logger.Debug(ctx, "openai explanation generated", "chars", len(content))
	return content, nil
}

// complete performs a single completions call.
func (c *Client) complete(ctx context.Context, body chatRequest) (string, error) {
	var result chatResponse
	resp, err := c.client.NewRequestWithOptions(
		httpclient.WithLabels(httpclient.NewLabel("endpoint", "chat_completions")),
		httpclient.WithResponseErrorHandler(openaiErrorHandler),
	).
		SetBody(body).
		SetResult(&result).
		Post(ctx, completionsEndpoint)

	if err != nil {
		return "", apperror.Wrap(err, apperror.CodeAIRequestFailed, "chat completions call failed")
	}
	if resp.IsError() {
		return "", apperror.New(apperror.CodeAIRequestFailed,
			apperror.WithStatusCode(resp.StatusCode),
			apperror.WithContext(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.String())))
	}

	if len(result.Choices) == 0 {
		return "", apperror.New(apperror.CodeAIEmptyResponse)
	}

	content := strings.TrimSpace(result.Choices[0].Message.Content)
	if content == "" {
		return "", apperror.New(apperror.CodeAIEmptyResponse)
	}

	return content, nil
}

// openaiErrorHandler maps API error responses to coded errors.
func openaiErrorHandler(statusCode int, body []byte) error {
	if statusCode < 400 {
		return nil
	}

	detail := string(body)
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		detail = apiErr.Error.Message
	}

	switch {
	case statusCode == http.StatusTooManyRequests:
		return apperror.New(apperror.CodeAIRateLimited,
			apperror.WithStatusCode(statusCode),
			apperror.WithContext(detail))
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return apperror.New(apperror.CodeAIUnauthorized,
			apperror.WithStatusCode(statusCode),
			apperror.WithContext(detail))
	case statusCode == http.StatusBadRequest:
		return apperror.New(apperror.CodeAIInvalidRequest,
			apperror.WithStatusCode(statusCode),
			apperror.WithContext(detail))
	default:
		return apperror.New(apperror.CodeAIRequestFailed,
			apperror.WithStatusCode(statusCode),
			apperror.WithContext(detail))
	}
}
