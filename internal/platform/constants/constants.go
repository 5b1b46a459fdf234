// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer and session token lifetime.
  - Translation: Provider timing and the exhaustion sentinel.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "glossa-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// Generous because a worst-case translation walks every provider sequentially.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// Must exceed the sum of all provider timeouts in the fallback chain.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in session tokens.
	AuthIssuer = "glossa.app"

	// SessionTokenTTL is the lifetime of a signed session token.
	// Exactly two hours from issuance; there is no revocation path, so the
	// token flips from Valid to Expired purely by clock.
	SessionTokenTTL = 2 * time.Hour
)

// # Translation

const (
	// DefaultProviderTimeout bounds a single outbound provider call.
	DefaultProviderTimeout = 5500 * time.Millisecond

	// ProviderExhaustedSentinel is the provider identifier reported when the
	// whole fallback chain has been walked without an accepted translation.
	ProviderExhaustedSentinel = "all-blocked"

	// UnavailableSuffix is appended to the original text on total exhaustion,
	// so the client always receives a renderable string.
	UnavailableSuffix = " (Translation service unavailable)"

	// DefaultCacheTTL is how long an accepted translation stays in the cache.
	DefaultCacheTTL = 24 * time.Hour
)

// # History

const (
	// DefaultHistoryLimit is the page size when the client does not send one.
	DefaultHistoryLimit = 50

	// MaxHistoryLimit caps the page size a client may request.
	MaxHistoryLimit = 200
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldPort    = "port"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixTranslation = "translate:result:"
)
