// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// # Result Cache Contract

/*
ResultCache stores accepted translations for reuse across requests.

The orchestrator treats the cache as strictly best-effort: a Get error is
a miss, a Set error is logged and ignored. Only successful results are
ever stored — degraded results must not be cached, or a transient outage
would pin its failure for the cache lifetime.
*/
type ResultCache interface {
	// Get looks up a previously accepted result.
	//
	// Returns:
	//   - *Result: the cached result, or nil on a miss.
	//   - error: backend failure; treated as a miss by callers.
	Get(ctx context.Context, request Request) (*Result, error)

	// Set stores an accepted result.
	Set(ctx context.Context, request Request, result Result) error
}

// cacheKey derives a fixed-length key from the request triple. Hashing
// keeps arbitrarily long input text out of the key space.
func cacheKey(request Request) string {
	digest := sha256.Sum256([]byte(request.Text + "|" + request.Source + "|" + request.Target))
	return hex.EncodeToString(digest[:])
}
