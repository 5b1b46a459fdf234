// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossabay/glossa/internal/platform/ctxutil"
	"github.com/glossabay/glossa/internal/platform/sec"
	"github.com/glossabay/glossa/internal/translation"
)

func newHistoryRequest(t *testing.T, method, target string, authenticated bool) *http.Request {
	t.Helper()

	request := httptest.NewRequest(method, target, nil)
	if authenticated {
		claims := &sec.AuthClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "ann@x.com"},
			Email:            "ann@x.com",
			Name:             "Ann Lee",
		}
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}
	return request
}

func seededHandler(t *testing.T) *Handler {
	t.Helper()

	service := NewService(NewMemoryEntryStore())
	err := service.Record(context.Background(), "ann@x.com",
		translation.Request{Text: "Hello", Source: "en", Target: "fr"},
		translation.Result{Translated: "Bonjour", Provider: "primary-1", Success: true},
	)
	require.NoError(t, err)

	return NewHandler(service)
}

func TestHandler_List(t *testing.T) {
	handler := seededHandler(t)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, newHistoryRequest(t, http.MethodGet, "/", true))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body listResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Bonjour", body.Items[0].Translated)
	assert.Equal(t, "English", body.Items[0].SourceName)
	assert.Equal(t, "French", body.Items[0].TargetName)
}

func TestHandler_List_Unauthenticated(t *testing.T) {
	handler := seededHandler(t)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, newHistoryRequest(t, http.MethodGet, "/", false))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_List_BadLimit(t *testing.T) {
	handler := seededHandler(t)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, newHistoryRequest(t, http.MethodGet, "/?limit=abc", true))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_Clear(t *testing.T) {
	handler := seededHandler(t)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, newHistoryRequest(t, http.MethodDelete, "/", true))
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, newHistoryRequest(t, http.MethodGet, "/", true))

	var body listResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Zero(t, body.Total)
	assert.Empty(t, body.Items)
}
