package app

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/halilatilla/web3-error-humanizer/business/humanizer/domain"
	"github.com/halilatilla/web3-error-humanizer/internal/apm"
	"github.com/halilatilla/web3-error-humanizer/internal/apperror"
	"github.com/halilatilla/web3-error-humanizer/internal/logger"
)

const (
	tracerName = "humanizer"
	meterName  = "humanizer"
)

// DefaultFallbackMessage is returned when neither the dictionary nor the AI
// backend can explain an error.
const DefaultFallbackMessage = "Transaction failed. Please try again."

// Config holds resolution behavior settings.
type Config struct {
	// FallbackMessage replaces DefaultFallbackMessage when set.
	FallbackMessage string
	// MaxRetries bounds AI retry attempts after rate limiting.
	MaxRetries int
	// InitialBackoff is the delay before the first retry. It doubles on
	// every subsequent retry, capped at MaxBackoff.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// WordBudget caps the length of AI-generated explanations.
	WordBudget int
}

func (c Config) withDefaults() Config {
	if c.FallbackMessage == "" {
		c.FallbackMessage = DefaultFallbackMessage
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = 500 * time.Millisecond
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = 8 * time.Second
	}
	if c.WordBudget <= 0 {
		c.WordBudget = 50
	}
	return c
}

// resolverMetrics holds OTEL metric instruments.
type resolverMetrics struct {
	resolutionsTotal metric.Int64Counter
	aiLatency        metric.Float64Histogram
	aiErrors         metric.Int64Counter
}

// Resolver turns arbitrary web3 error values into user-friendly messages.
// Resolution order: local dictionary match, AI backend, fallback message.
type Resolver struct {
	extractor *domain.Extractor
	index     *domain.Index
	backend   AIBackend
	cfg       Config
	logger    logger.LoggerInterface

	tracer  apm.Tracer
	metrics *resolverMetrics
}

// NewResolver creates a Resolver over the given pattern index. backend may
// be nil, in which case unmatched errors resolve to the fallback message.
func NewResolver(index *domain.Index, backend AIBackend, cfg Config, log logger.LoggerInterface) (*Resolver, error) {
	r := &Resolver{
		extractor: domain.NewExtractor(index),
		index:     index,
		backend:   backend,
		cfg:       cfg.withDefaults(),
		logger:    log,
		tracer:    apm.NewTracer(tracerName),
	}

	if err := r.initMetrics(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Resolver) initMetrics() error {
	meter := otel.Meter(meterName)
	var err error

	r.metrics = &resolverMetrics{}

	r.metrics.resolutionsTotal, err = meter.Int64Counter(
		"humanizer_resolutions_total",
		metric.WithDescription("Total error resolutions by source"),
	)
	if err != nil {
		return err
	}

	r.metrics.aiLatency, err = meter.Float64Histogram(
		"humanizer_ai_latency_ms",
		metric.WithDescription("AI completion latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	r.metrics.aiErrors, err = meter.Int64Counter(
		"humanizer_ai_errors_total",
		metric.WithDescription("Total AI completion errors"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Humanize resolves an error value to a user-friendly message.
func (r *Resolver) Humanize(ctx context.Context, v any, hctx domain.Context) string {
	return r.HumanizeDetailed(ctx, v, hctx).Message
}

// HumanizeDetailed resolves an error value and reports how the message was
// produced. It never fails: unresolvable inputs yield the fallback message.
func (r *Resolver) HumanizeDetailed(ctx context.Context, v any, hctx domain.Context) domain.HumanizedResult {
	ctx, span := r.tracer.StartSpanFromContext(ctx, "humanizer.resolve")
	defer span.End()

	raw := r.extractor.RawMessage(v)
	span.SetAttributes(attribute.String("error.raw_message", raw))

	if match, ok := r.index.Match(raw); ok {
		span.SetAttributes(
			attribute.String("resolution.source", string(domain.SourceLocal)),
			attribute.String("resolution.matched_key", match.MatchedKey),
		)
		r.recordResolution(ctx, domain.SourceLocal)

		return domain.HumanizedResult{
			Message:    match.Message,
			Source:     domain.SourceLocal,
			MatchedKey: match.MatchedKey,
			RawMessage: raw,
		}
	}

	if r.backend != nil {
		msg, err := r.explainWithRetry(ctx, raw, hctx)
		if err == nil {
			span.SetAttributes(attribute.String("resolution.source", string(domain.SourceAI)))
			r.recordResolution(ctx, domain.SourceAI)

			return domain.HumanizedResult{
				Message:    msg,
				Source:     domain.SourceAI,
				RawMessage: raw,
			}
		}

		span.NoticeError(err)
		r.logger.Warn(ctx, "ai explanation failed, using fallback",
			"error", err, "code", apperror.GetCode(err))
	}

	span.SetAttributes(attribute.String("resolution.source", string(domain.SourceFallback)))
	r.recordResolution(ctx, domain.SourceFallback)

	return domain.HumanizedResult{
		Message:    r.cfg.FallbackMessage,
		Source:     domain.SourceFallback,
		RawMessage: raw,
	}
}

// explainWithRetry calls the AI backend, retrying rate-limited requests
// with doubling backoff. Other failures abort immediately.
func (r *Resolver) explainWithRetry(ctx context.Context, raw string, hctx domain.Context) (string, error) {
	req := ExplainRequest{
		RawMessage: raw,
		Context:    hctx,
		WordBudget: r.cfg.WordBudget,
	}

	backoff := r.cfg.InitialBackoff
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			r.logger.Debug(ctx, "retrying ai explanation",
				"attempt", attempt, "backoff", backoff.String())

			select {
			case <-ctx.Done():
				return "", apperror.Wrap(ctx.Err(), apperror.CodeServiceTimeout, "ai retry wait")
			case <-time.After(backoff):
			}

			backoff *= 2
			if backoff > r.cfg.MaxBackoff {
				backoff = r.cfg.MaxBackoff
			}
		}

		start := time.Now()
		msg, err := r.backend.Explain(ctx, req)
		r.metrics.aiLatency.Record(ctx, float64(time.Since(start).Milliseconds()))

		if err == nil {
			msg = strings.TrimSpace(msg)
			if msg == "" {
				return "", apperror.New(apperror.CodeAIEmptyResponse)
			}
			return msg, nil
		}

		r.metrics.aiErrors.Add(ctx, 1,
			metric.WithAttributes(attribute.String("code", string(apperror.GetCode(err)))))
		lastErr = err

		if !apperror.IsCode(err, apperror.CodeAIRateLimited) {
			return "", err
		}
	}

	return "", lastErr
}

func (r *Resolver) recordResolution(ctx context.Context, source domain.Source) {
	r.metrics.resolutionsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("source", string(source))))
}
