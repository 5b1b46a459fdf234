// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// # Free-Form Provider (Google-style)

// FreeFormProvider talks to the unofficial Google endpoint: a GET with the
// text in the query string, answered by a deeply nested positional array.
// It is the last-resort backup in the fallback chain.
type FreeFormProvider struct {
	name     string
	endpoint string
	client   *http.Client
}

/*
NewFreeFormProvider builds the backup provider.

Parameters:
  - name: identifier surfaced to clients, e.g. "Google Fallback".
  - endpoint: the base translate URL without query parameters.
  - timeout: backstop for the underlying HTTP client.

Returns:
  - *FreeFormProvider: the configured provider.
*/
func NewFreeFormProvider(name string, endpoint string, timeout time.Duration) *FreeFormProvider {
	return &FreeFormProvider{
		name:     name,
		endpoint: endpoint,
		client:   newProviderClient(timeout),
	}
}

// Name implements Provider.
func (provider *FreeFormProvider) Name() string {
	return provider.name
}

// Translate implements Provider for the free-form wire shape.
func (provider *FreeFormProvider) Translate(ctx context.Context, request Request) (string, error) {
	requestURL := fmt.Sprintf("%s?client=gtx&sl=%s&tl=%s&dt=t&q=%s",
		provider.endpoint,
		url.QueryEscape(request.Source),
		url.QueryEscape(request.Target),
		url.QueryEscape(request.Text),
	)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("freeform_provider_request_failed: %w", err)
	}

	httpResponse, err := provider.client.Do(httpRequest)
	if err != nil {
		return "", fmt.Errorf("freeform_provider_call_failed: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		io.Copy(io.Discard, httpResponse.Body)
		return "", fmt.Errorf("freeform_provider_status_%d", httpResponse.StatusCode)
	}

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return "", fmt.Errorf("freeform_provider_read_failed: %w", err)
	}

	translated, err := decodeFreeFormBody(body)
	if err != nil {
		return "", err
	}

	return translated, nil
}

// decodeFreeFormBody extracts the translation from the positional array
// shape [[[translated, original, ...], ...], ...]: the first element of
// each segment in the first group, concatenated in order. Sentence-split
// inputs come back as multiple segments.
func decodeFreeFormBody(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("freeform_provider_decode_failed: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("freeform_provider_empty_payload")
	}

	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("freeform_provider_unexpected_shape")
	}

	var builder strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if fragment, ok := parts[0].(string); ok {
			builder.WriteString(fragment)
		}
	}

	if builder.Len() == 0 {
		return "", fmt.Errorf("freeform_provider_empty_result")
	}

	return builder.String(), nil
}
