// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package translation

import (
	"context"
	"time"

	"github.com/glossabay/glossa/internal/platform/constants"
	"github.com/glossabay/glossa/internal/platform/ctxutil"
)

// # Fallback Orchestrator

// Service walks the provider chain for each request: primaries in
// configured order, then the single backup, stopping at the first
// acceptable translation. It never returns an error — exhaustion yields a
// degraded Result instead.
type Service struct {
	primaries       []Provider
	backup          Provider
	cache           ResultCache
	providerTimeout time.Duration
}

/*
NewService builds the fallback orchestrator.

Parameters:
  - primaries: providers tried first, in priority order.
  - backup: last-resort provider; nil disables the backup tier.
  - cache: result cache; nil disables caching.
  - providerTimeout: per-provider call deadline; zero falls back to the default.

Returns:
  - *Service: the configured orchestrator.
*/
func NewService(primaries []Provider, backup Provider, cache ResultCache, providerTimeout time.Duration) *Service {
	if providerTimeout <= 0 {
		providerTimeout = constants.DefaultProviderTimeout
	}
	return &Service{
		primaries:       primaries,
		backup:          backup,
		cache:           cache,
		providerTimeout: providerTimeout,
	}
}

/*
Translate resolves a request through the cache and the provider chain.

Every provider failure — transport error, timeout, malformed body, empty
or echoed translation — is absorbed: the chain simply advances. Only a
successful result is cached, so a transient outage never pins its failure.

Parameters:
  - ctx: request-scoped context; cancellation aborts the remaining chain.
  - request: the text and language pair to translate.

Returns:
  - Result: always populated; Success=false marks total exhaustion.
*/
func (service *Service) Translate(ctx context.Context, request Request) Result {
	logger := ctxutil.GetLogger(ctx)

	if service.cache != nil {
		cached, err := service.cache.Get(ctx, request)
		if err != nil {
			logger.Warn("translation cache lookup failed", "error", err)
		} else if cached != nil {
			logger.Debug("translation served from cache", "provider", cached.Provider)
			return *cached
		}
	}

	for _, provider := range service.providerChain() {
		if ctx.Err() != nil {
			break
		}

		translated, ok := service.attempt(ctx, provider, request)
		if !ok {
			continue
		}

		result := Result{
			Translated: translated,
			Provider:   provider.Name(),
			Success:    true,
		}
		service.store(ctx, request, result)
		return result
	}

	logger.Warn("all translation providers exhausted",
		"source", request.Source,
		"target", request.Target,
	)
	return Degraded(request)
}

// providerChain returns primaries followed by the backup, when configured.
func (service *Service) providerChain() []Provider {
	chain := make([]Provider, 0, len(service.primaries)+1)
	chain = append(chain, service.primaries...)
	if service.backup != nil {
		chain = append(chain, service.backup)
	}
	return chain
}

// attempt runs one provider under the per-call deadline and applies the
// acceptance policy: non-empty output that differs from the input. An
// upstream echoing the untranslated text back is treated as a failure.
func (service *Service) attempt(ctx context.Context, provider Provider, request Request) (string, bool) {
	logger := ctxutil.GetLogger(ctx)

	callCtx, cancel := context.WithTimeout(ctx, service.providerTimeout)
	defer cancel()

	translated, err := provider.Translate(callCtx, request)
	if err != nil {
		logger.Debug("translation provider failed",
			"provider", provider.Name(),
			"error", err,
		)
		return "", false
	}
	if translated == "" || translated == request.Text {
		logger.Debug("translation provider echoed input",
			"provider", provider.Name(),
		)
		return "", false
	}

	return translated, true
}

// store writes an accepted result to the cache, best effort.
func (service *Service) store(ctx context.Context, request Request, result Result) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Set(ctx, request, result); err != nil {
		ctxutil.GetLogger(ctx).Warn("translation cache store failed", "error", err)
	}
}
