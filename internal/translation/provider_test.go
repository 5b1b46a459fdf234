// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// # Document Provider Wire Shape

func TestDocumentProvider_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, http.MethodPost, request.Method)
		require.Equal(t, "application/json", request.Header.Get("Content-Type"))

		var body documentRequest
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "Hello", body.Text)
		assert.Equal(t, "en", body.Source)
		assert.Equal(t, "fr", body.Target)
		assert.Equal(t, "text", body.Format)

		json.NewEncoder(writer).Encode(documentResponse{TranslatedText: "Bonjour"})
	}))
	defer server.Close()

	provider := NewDocumentProvider(server.URL, time.Second)

	translated, err := provider.Translate(context.Background(), sampleRequest)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", translated)
	assert.Equal(t, server.URL, provider.Name())
}

func TestDocumentProvider_TranslateErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(writer http.ResponseWriter, request *http.Request) {
				http.Error(writer, "rate limited", http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(writer http.ResponseWriter, request *http.Request) {
				writer.Write([]byte("<html>not json</html>"))
			},
		},
		{
			name: "empty translation",
			handler: func(writer http.ResponseWriter, request *http.Request) {
				json.NewEncoder(writer).Encode(documentResponse{})
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(testCase.handler)
			defer server.Close()

			provider := NewDocumentProvider(server.URL, time.Second)

			_, err := provider.Translate(context.Background(), sampleRequest)
			assert.Error(t, err)
		})
	}
}

func TestDocumentProvider_HonorsContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	provider := NewDocumentProvider(server.URL, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := provider.Translate(ctx, sampleRequest)
	assert.Error(t, err)
}

// # Free-Form Provider Wire Shape

func TestFreeFormProvider_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, http.MethodGet, request.Method)
		query := request.URL.Query()
		assert.Equal(t, "gtx", query.Get("client"))
		assert.Equal(t, "en", query.Get("sl"))
		assert.Equal(t, "fr", query.Get("tl"))
		assert.Equal(t, "t", query.Get("dt"))
		assert.Equal(t, "Hello. How are you?", query.Get("q"))

		// Sentence-split response: two segments, translated text first.
		writer.Write([]byte(`[[["Bonjour. ","Hello. ",null,null],["Comment allez-vous ?","How are you?",null,null]],null,"en"]`))
	}))
	defer server.Close()

	provider := NewFreeFormProvider("Google Fallback", server.URL, time.Second)

	translated, err := provider.Translate(context.Background(), Request{
		Text:   "Hello. How are you?",
		Source: "en",
		Target: "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bonjour. Comment allez-vous ?", translated)
	assert.Equal(t, "Google Fallback", provider.Name())
}

func TestDecodeFreeFormBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "single segment",
			body: `[[["Bonjour","Hello",null]],null,"en"]`,
			want: "Bonjour",
		},
		{
			name: "skips malformed segments",
			body: `[[["Bonjour","Hello"],[],42,["!","!"]]]`,
			want: "Bonjour!",
		},
		{
			name:    "not json",
			body:    `<html></html>`,
			wantErr: true,
		},
		{
			name:    "empty payload",
			body:    `[]`,
			wantErr: true,
		},
		{
			name:    "first group not an array",
			body:    `["nope"]`,
			wantErr: true,
		},
		{
			name:    "no string fragments",
			body:    `[[[null,null]]]`,
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := decodeFreeFormBody([]byte(testCase.body))
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestFreeFormProvider_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "blocked", http.StatusForbidden)
	}))
	defer server.Close()

	provider := NewFreeFormProvider("Google Fallback", server.URL, time.Second)

	_, err := provider.Translate(context.Background(), sampleRequest)
	assert.Error(t, err)
}
