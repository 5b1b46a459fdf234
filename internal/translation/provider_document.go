// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// # Document Provider (LibreTranslate-compatible)

// documentRequest is the JSON body POSTed to a document-style endpoint.
type documentRequest struct {
	Text   string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// documentResponse is the JSON body a document-style endpoint answers with.
type documentResponse struct {
	TranslatedText string `json:"translatedText"`
}

// DocumentProvider talks to a LibreTranslate-compatible endpoint: a JSON
// POST of {q, source, target, format} answered by {translatedText}.
type DocumentProvider struct {
	endpoint string
	client   *http.Client
}

/*
NewDocumentProvider builds a provider for one LibreTranslate-compatible
instance.

Parameters:
  - endpoint: the full translate URL, e.g. "https://libretranslate.com/translate".
  - timeout: backstop for the underlying HTTP client.

Returns:
  - *DocumentProvider: the configured provider.
*/
func NewDocumentProvider(endpoint string, timeout time.Duration) *DocumentProvider {
	return &DocumentProvider{
		endpoint: endpoint,
		client:   newProviderClient(timeout),
	}
}

// Name returns the instance endpoint, which doubles as the provider
// identifier surfaced to clients.
func (provider *DocumentProvider) Name() string {
	return provider.endpoint
}

// Translate implements Provider for the document wire shape.
func (provider *DocumentProvider) Translate(ctx context.Context, request Request) (string, error) {
	payload, err := json.Marshal(documentRequest{
		Text:   request.Text,
		Source: request.Source,
		Target: request.Target,
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("document_provider_encode_failed: %w", err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("document_provider_request_failed: %w", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := provider.client.Do(httpRequest)
	if err != nil {
		return "", fmt.Errorf("document_provider_call_failed: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		io.Copy(io.Discard, httpResponse.Body)
		return "", fmt.Errorf("document_provider_status_%d: %s", httpResponse.StatusCode, provider.endpoint)
	}

	var decoded documentResponse
	if err := json.NewDecoder(httpResponse.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("document_provider_decode_failed: %w", err)
	}
	if decoded.TranslatedText == "" {
		return "", fmt.Errorf("document_provider_empty_result: %s", provider.endpoint)
	}

	return decoded.TranslatedText, nil
}
