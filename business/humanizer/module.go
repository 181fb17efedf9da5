// Package humanizer implements the error humanization bounded context.
package humanizer

import (
	"context"

	"github.com/halilatilla/web3-error-humanizer/business/humanizer/app"
	humanizerDI "github.com/halilatilla/web3-error-humanizer/business/humanizer/di"
	"github.com/halilatilla/web3-error-humanizer/business/humanizer/domain"
	"github.com/halilatilla/web3-error-humanizer/business/humanizer/infra/openai"
	"github.com/halilatilla/web3-error-humanizer/internal/config"
	"github.com/halilatilla/web3-error-humanizer/internal/di"
	"github.com/halilatilla/web3-error-humanizer/internal/dictionary"
	"github.com/halilatilla/web3-error-humanizer/internal/logger"
	"github.com/halilatilla/web3-error-humanizer/internal/monolith"
)

// Module implements the humanizer bounded context.
type Module struct{}

// RegisterServices registers all humanizer services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// Register pattern index - private dependency
	di.RegisterToken(c, humanizerDI.Index, func(sr di.ServiceRegistry) *domain.Index {
		dict := sr.Get("dictionary").(*dictionary.Dictionary)
		return domain.BuildIndex(dict.Entries())
	})

	// Register AI backend - private dependency, nil when no api key is configured
	di.RegisterToken(c, humanizerDI.AIBackend, func(sr di.ServiceRegistry) app.AIBackend {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		if !cfg.AI.Enabled() {
			return nil
		}

		client, err := openai.NewClient(openai.Config{
			APIKey:       cfg.AI.APIKey,
			BaseURL:      cfg.AI.BaseURL,
			Model:        cfg.AI.Model,
			MaxTokens:    cfg.AI.MaxTokens,
			Timeout:      cfg.AI.RequestTimeout,
			RateLimitRPM: cfg.AI.RateLimitRPM,
		}, log)
		if err != nil {
			panic("failed to create openai client: " + err.Error())
		}
		return client
	})

	// Register Resolver (public - exposed to other modules)
	di.RegisterToken(c, humanizerDI.Resolver, func(sr di.ServiceRegistry) *app.Resolver {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		resolver, err := app.NewResolver(
			humanizerDI.GetIndex(sr),
			humanizerDI.GetAIBackend(sr),
			app.Config{
				FallbackMessage: cfg.Humanizer.FallbackMessage,
				MaxRetries:      cfg.AI.MaxRetries,
				InitialBackoff:  cfg.AI.InitialBackoff,
				MaxBackoff:      cfg.AI.MaxBackoff,
				WordBudget:      cfg.AI.WordBudget,
			},
			log,
		)
		if err != nil {
			panic("failed to create resolver: " + err.Error())
		}
		return resolver
	})

	return nil
}

// Startup initializes the humanizer module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	log := mono.Logger()

	// Force index construction so pattern table problems surface at startup.
	idx := humanizerDI.GetIndex(mono.Services())

	log.Info(ctx, "humanizer module started",
		"patterns", idx.Len(),
		"ai_enabled", mono.Config().AI.Enabled())
	return nil
}
