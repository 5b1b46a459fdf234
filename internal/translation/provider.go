// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package translation

import (
	"context"
	"net/http"
	"time"
)

// # Provider Contract

/*
Provider is a single upstream translation backend.

Implementations normalize one wire shape into a plain translated string.
They must honor context cancellation and return an error for anything that
is not a usable translation: transport failures, non-2xx statuses, bodies
that do not decode, and empty results. Acceptance policy (such as rejecting
translations identical to the input) lives in the orchestrator, not here.
*/
type Provider interface {
	// Name identifies the provider in results and logs. For instance-style
	// providers this is the endpoint URL itself, so clients can tell which
	// upstream served a given translation.
	Name() string

	// Translate performs one translation call.
	//
	// Parameters:
	//   - ctx: carries the per-call deadline set by the orchestrator.
	//   - request: the text and language pair to translate.
	//
	// Returns:
	//   - string: the translated text, non-empty on success.
	//   - error: any condition that makes the response unusable.
	Translate(ctx context.Context, request Request) (string, error)
}

// newProviderClient builds the HTTP client shared by provider
// implementations. The client timeout is a backstop; the effective
// per-call bound is the context deadline set by the orchestrator.
func newProviderClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
