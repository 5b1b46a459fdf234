// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package translation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossabay/glossa/internal/platform/constants"
)

// # Test Doubles

// stubProvider answers from a fixed script and counts invocations.
type stubProvider struct {
	name   string
	output string
	err    error
	calls  int
}

func (provider *stubProvider) Name() string {
	return provider.name
}

func (provider *stubProvider) Translate(_ context.Context, _ Request) (string, error) {
	provider.calls++
	if provider.err != nil {
		return "", provider.err
	}
	return provider.output, nil
}

// memoryCache is an in-process ResultCache for orchestrator tests.
type memoryCache struct {
	mutex   sync.Mutex
	entries map[string]Result
	getErr  error
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]Result{}}
}

func (cache *memoryCache) Get(_ context.Context, request Request) (*Result, error) {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()
	if cache.getErr != nil {
		return nil, cache.getErr
	}
	result, ok := cache.entries[cacheKey(request)]
	if !ok {
		return nil, nil
	}
	return &result, nil
}

func (cache *memoryCache) Set(_ context.Context, request Request, result Result) error {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()
	if cache.setErr != nil {
		return cache.setErr
	}
	cache.entries[cacheKey(request)] = result
	return nil
}

var sampleRequest = Request{Text: "Hello", Source: "en", Target: "fr"}

// # Orchestrator Behavior

func TestService_Translate_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "primary-1", output: "Bonjour"}
	second := &stubProvider{name: "primary-2", output: "Salut"}
	backup := &stubProvider{name: "backup", output: "Coucou"}

	service := NewService([]Provider{first, second}, backup, nil, time.Second)
	result := service.Translate(context.Background(), sampleRequest)

	require.True(t, result.Success)
	assert.Equal(t, "Bonjour", result.Translated)
	assert.Equal(t, "primary-1", result.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls, "chain must stop at the first acceptable result")
	assert.Zero(t, backup.calls)
}

func TestService_Translate_FallsThroughFailures(t *testing.T) {
	first := &stubProvider{name: "primary-1", err: errors.New("connect refused")}
	second := &stubProvider{name: "primary-2", output: ""}
	backup := &stubProvider{name: "backup", output: "Bonjour"}

	service := NewService([]Provider{first, second}, backup, nil, time.Second)
	result := service.Translate(context.Background(), sampleRequest)

	require.True(t, result.Success)
	assert.Equal(t, "Bonjour", result.Translated)
	assert.Equal(t, "backup", result.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 1, backup.calls)
}

func TestService_Translate_RejectsEchoedInput(t *testing.T) {
	echoing := &stubProvider{name: "primary-1", output: sampleRequest.Text}
	backup := &stubProvider{name: "backup", output: "Bonjour"}

	service := NewService([]Provider{echoing}, backup, nil, time.Second)
	result := service.Translate(context.Background(), sampleRequest)

	require.True(t, result.Success)
	assert.Equal(t, "Bonjour", result.Translated)
	assert.Equal(t, "backup", result.Provider)
	assert.Equal(t, 1, echoing.calls)
}

func TestService_Translate_ExhaustionYieldsDegradedResult(t *testing.T) {
	first := &stubProvider{name: "primary-1", err: errors.New("timeout")}
	backup := &stubProvider{name: "backup", output: sampleRequest.Text}

	service := NewService([]Provider{first}, backup, nil, time.Second)
	result := service.Translate(context.Background(), sampleRequest)

	assert.False(t, result.Success)
	assert.Equal(t, sampleRequest.Text+constants.UnavailableSuffix, result.Translated)
	assert.Equal(t, constants.ProviderExhaustedSentinel, result.Provider)
}

func TestService_Translate_NoBackupConfigured(t *testing.T) {
	first := &stubProvider{name: "primary-1", err: errors.New("down")}

	service := NewService([]Provider{first}, nil, nil, time.Second)
	result := service.Translate(context.Background(), sampleRequest)

	assert.False(t, result.Success)
	assert.Equal(t, constants.ProviderExhaustedSentinel, result.Provider)
}

// # Cache Interaction

func TestService_Translate_CacheHitSkipsProviders(t *testing.T) {
	cache := newMemoryCache()
	cached := Result{Translated: "Bonjour", Provider: "primary-1", Success: true}
	require.NoError(t, cache.Set(context.Background(), sampleRequest, cached))

	provider := &stubProvider{name: "primary-1", output: "Salut"}
	service := NewService([]Provider{provider}, nil, cache, time.Second)

	result := service.Translate(context.Background(), sampleRequest)

	assert.Equal(t, cached, result)
	assert.Zero(t, provider.calls, "cache hit must not invoke providers")
}

func TestService_Translate_SuccessIsCached(t *testing.T) {
	cache := newMemoryCache()
	provider := &stubProvider{name: "primary-1", output: "Bonjour"}
	service := NewService([]Provider{provider}, nil, cache, time.Second)

	first := service.Translate(context.Background(), sampleRequest)
	second := service.Translate(context.Background(), sampleRequest)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls, "second call must be served from cache")
}

func TestService_Translate_DegradedResultIsNotCached(t *testing.T) {
	cache := newMemoryCache()
	provider := &stubProvider{name: "primary-1", err: errors.New("down")}
	service := NewService([]Provider{provider}, nil, cache, time.Second)

	service.Translate(context.Background(), sampleRequest)
	service.Translate(context.Background(), sampleRequest)

	assert.Empty(t, cache.entries, "exhaustion must never be pinned in the cache")
	assert.Equal(t, 2, provider.calls)
}

func TestService_Translate_CacheFailureIsAbsorbed(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")

	provider := &stubProvider{name: "primary-1", output: "Bonjour"}
	service := NewService([]Provider{provider}, nil, cache, time.Second)

	result := service.Translate(context.Background(), sampleRequest)

	require.True(t, result.Success)
	assert.Equal(t, "Bonjour", result.Translated)
}

func TestService_Translate_CanceledContextShortCircuits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &stubProvider{name: "primary-1", output: "Bonjour"}
	service := NewService([]Provider{provider}, nil, nil, time.Second)

	result := service.Translate(ctx, sampleRequest)

	assert.False(t, result.Success)
	assert.Zero(t, provider.calls)
}
