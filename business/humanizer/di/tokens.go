// Package di contains dependency injection tokens for the humanizer context.
package di

import (
	"github.com/halilatilla/web3-error-humanizer/business/humanizer/app"
	"github.com/halilatilla/web3-error-humanizer/business/humanizer/domain"
	"github.com/halilatilla/web3-error-humanizer/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Resolver = di.NewToken[*app.Resolver]("humanizer.Resolver")
)

// Private dependency tokens - internal to humanizer module
var (
	Index     = di.NewToken[*domain.Index]("humanizer:index")
	AIBackend = di.NewToken[app.AIBackend]("humanizer:aiBackend")
)

// Helper functions for type-safe access
func GetResolver(c di.ServiceRegistry) *app.Resolver {
	return di.GetToken(c, Resolver)
}

func GetIndex(c di.ServiceRegistry) *domain.Index {
	return di.GetToken(c, Index)
}

func GetAIBackend(c di.ServiceRegistry) app.AIBackend {
	return di.GetToken(c, AIBackend)
}
