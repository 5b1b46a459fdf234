// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

/*
Package translation implements the multi-provider translation core.

It drives a prioritized chain of external translation providers until one
yields an acceptable translation, falling back to a marked degraded result
when every provider is exhausted.

# Architecture

  - Provider: a single outbound client normalizing one upstream's wire shape.
  - Service: the fallback orchestrator — strictly sequential, stateless
    across requests, bounded by a fixed per-provider timeout.
  - ResultCache: optional Redis-backed reuse of accepted translations.

# Failure Semantics

The orchestrator never returns an error. Provider failures of every kind
(transport, timeout, malformed body, echoed input) are absorbed and only
ever manifest as trying the next provider — or, at the end of the chain,
as a Result with Success=false. Callers always get HTTP 200 and inspect
the success flag.
*/
package translation

import (
	"github.com/glossabay/glossa/internal/platform/constants"
)

// # Domain Types

// Request is a single translation request.
//
// Source and Target are opaque language tags: the server forwards them to
// providers without validating against a fixed set.
type Request struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Result is the outcome of a fallback-chain walk.
//
// Invariant: Success=false implies Translated is the original text annotated
// with the unavailable marker — never empty.
type Result struct {
	Translated string `json:"translated"`
	Provider   string `json:"api"`
	Success    bool   `json:"success"`
}

// Degraded builds the total-exhaustion Result for a request.
//
// The original text is preserved and annotated so the client always has a
// renderable string, and the provider identifier is the exhaustion sentinel.
func Degraded(request Request) Result {
	return Result{
		Translated: request.Text + constants.UnavailableSuffix,
		Provider:   constants.ProviderExhaustedSentinel,
		Success:    false,
	}
}

// # Field Identifiers

const (
	FieldText   = "text"
	FieldSource = "source"
	FieldTarget = "target"
)
