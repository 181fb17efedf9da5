// Package humanize is the public entry point for turning raw web3 errors
// into user-friendly messages.
//
// The package-level functions resolve against the built-in pattern table
// only. Construct a Humanizer with New to customize the dictionary, attach
// an AI backend, or change the fallback message.
package humanize

import (
	"context"
	"io"
	"sync"

	"github.com/halilatilla/web3-error-humanizer/business/humanizer/app"
	"github.com/halilatilla/web3-error-humanizer/business/humanizer/domain"
	"github.com/halilatilla/web3-error-humanizer/business/humanizer/infra/openai"
	"github.com/halilatilla/web3-error-humanizer/internal/dictionary"
	"github.com/halilatilla/web3-error-humanizer/internal/logger"
)

var (
	defaultOnce      sync.Once
	defaultIndex     *domain.Index
	defaultExtractor *domain.Extractor
)

func defaults() (*domain.Index, *domain.Extractor) {
	defaultOnce.Do(func() {
		defaultIndex = domain.BuildIndex(dictionary.Default().Entries())
		defaultExtractor = domain.NewExtractor(defaultIndex)
	})
	return defaultIndex, defaultExtractor
}

// HumanizeErrorLocal resolves an error value against the built-in pattern
// table. It reports false when no pattern matches.
func HumanizeErrorLocal(v any) (string, bool) {
	idx, ext := defaults()
	match, ok := idx.Match(ext.RawMessage(v))
	if !ok {
		return "", false
	}
	return match.Message, true
}

// HumanizeError resolves an error value against the built-in pattern table,
// returning the fallback message when no pattern matches. With no explicit
// fallback the default is used.
func HumanizeError(v any, fallback ...string) string {
	return HumanizeErrorDetailed(v, fallback...).Message
}

// HumanizeErrorDetailed is HumanizeError with full resolution detail.
func HumanizeErrorDetailed(v any, fallback ...string) domain.HumanizedResult {
	idx, ext := defaults()
	raw := ext.RawMessage(v)

	if match, ok := idx.Match(raw); ok {
		return domain.HumanizedResult{
			Message:    match.Message,
			Source:     domain.SourceLocal,
			MatchedKey: match.MatchedKey,
			RawMessage: raw,
		}
	}

	msg := app.DefaultFallbackMessage
	if len(fallback) > 0 && fallback[0] != "" {
		msg = fallback[0]
	}

	return domain.HumanizedResult{
		Message:    msg,
		Source:     domain.SourceFallback,
		RawMessage: raw,
	}
}

// Humanizer resolves errors with a configurable dictionary and an optional
// AI backend.
type Humanizer struct {
	resolver *app.Resolver
}

type options struct {
	dict     *dictionary.Dictionary
	backend  app.AIBackend
	aiConfig *openai.Config
	cfg      app.Config
	log      logger.LoggerInterface
}

// Option configures a Humanizer under construction.
type Option func(*options)

// WithDictionary merges extra patterns into the built-in table. Keys
// already present are overridden.
func WithDictionary(dict *dictionary.Dictionary) Option {
	return func(o *options) {
		o.dict = o.dict.Merge(dict)
	}
}

// WithBackend attaches a custom AI backend.
func WithBackend(backend app.AIBackend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

// WithOpenAI attaches the OpenAI backend using the given configuration.
func WithOpenAI(cfg openai.Config) Option {
	return func(o *options) {
		o.aiConfig = &cfg
	}
}

// WithAPIKey attaches the OpenAI backend with default settings.
func WithAPIKey(apiKey string) Option {
	return WithOpenAI(openai.Config{APIKey: apiKey})
}

// WithFallback overrides the default fallback message.
func WithFallback(message string) Option {
	return func(o *options) {
		o.cfg.FallbackMessage = message
	}
}

// WithWordBudget caps the length of AI-generated explanations.
func WithWordBudget(words int) Option {
	return func(o *options) {
		o.cfg.WordBudget = words
	}
}

// WithLogger routes the Humanizer's logging to the given logger. Logging
// is discarded by default.
func WithLogger(log logger.LoggerInterface) Option {
	return func(o *options) {
		o.log = log
	}
}

// New creates a Humanizer. With no options it behaves like the
// package-level functions.
func New(opts ...Option) (*Humanizer, error) {
	o := &options{
		dict: dictionary.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.log == nil {
		o.log = logger.New(io.Discard, logger.LevelError, "humanize", nil)
	}

	backend := o.backend
	if backend == nil && o.aiConfig != nil {
		client, err := openai.NewClient(*o.aiConfig, o.log)
		if err != nil {
			return nil, err
		}
		backend = client
	}

	resolver, err := app.NewResolver(domain.BuildIndex(o.dict.Entries()), backend, o.cfg, o.log)
	if err != nil {
		return nil, err
	}

	return &Humanizer{resolver: resolver}, nil
}

// Humanize resolves an error value to a user-friendly message.
func (h *Humanizer) Humanize(ctx context.Context, v any) string {
	return h.resolver.Humanize(ctx, v, domain.Context{})
}

// HumanizeWithContext resolves an error value using transaction context to
// sharpen AI explanations.
func (h *Humanizer) HumanizeWithContext(ctx context.Context, v any, txCtx domain.Context) string {
	return h.resolver.Humanize(ctx, v, txCtx)
}

// HumanizeDetailed resolves an error value and reports how the message was
// produced.
func (h *Humanizer) HumanizeDetailed(ctx context.Context, v any, txCtx domain.Context) domain.HumanizedResult {
	return h.resolver.HumanizeDetailed(ctx, v, txCtx)
}
