// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package translation

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glossabay/glossa/internal/platform/ctxutil"
	requestutil "github.com/glossabay/glossa/internal/platform/request"
	"github.com/glossabay/glossa/internal/platform/respond"
	"github.com/glossabay/glossa/internal/platform/validate"
)

// # HTTP Delivery

/*
HistorySink receives accepted and degraded results for per-user history.

Recording is strictly best-effort: a sink failure is logged and never
affects the translation response.
*/
type HistorySink interface {
	Record(ctx context.Context, email string, request Request, result Result) error
}

// Handler implements the translation HTTP endpoint.
type Handler struct {
	translationService *Service
	historySink        HistorySink
}

// NewHandler constructs a new [Handler]. The sink may be nil when history
// recording is disabled.
func NewHandler(service *Service, sink HistorySink) *Handler {
	return &Handler{
		translationService: service,
		historySink:        sink,
	}
}

// Routes returns a [chi.Router] configured with translation routes.
// The router is mount-relative; the server mounts it at /translate.
//
// # Endpoints
//   - POST / : Resolves a translation through the provider chain.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.translate)
	return router
}

// translateRequest mirrors the SPA payload.
type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

/*
Translate resolves a translation request for an authenticated user.

POST /translate

Description: Walks the provider fallback chain and always answers 200 with
a populated body; clients inspect the success flag. Provider exhaustion is
not an HTTP error.

Request:
  - Header: Authorization: Bearer <token>
  - Body: translateRequest (Text, Source, Target)

Response:
  - 200: Result: Translated text, serving provider, success flag
  - 400: ErrInvalidJSON: Bad input or missing text
  - 401: ErrUnauthorized: Missing or invalid session token
*/
func (handler *Handler) translate(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input translateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}
	if input.Text == "" {
		respond.Error(writer, request, validate.RequiredError(FieldText, "Missing text to translate"))
		return
	}

	translationRequest := Request{
		Text:   input.Text,
		Source: input.Source,
		Target: input.Target,
	}

	result := handler.translationService.Translate(request.Context(), translationRequest)

	handler.record(request.Context(), claims.Email, translationRequest, result)

	respond.OK(writer, result)
}

// record forwards the outcome to the history sink, best effort.
func (handler *Handler) record(ctx context.Context, email string, request Request, result Result) {
	if handler.historySink == nil {
		return
	}
	if err := handler.historySink.Record(ctx, email, request, result); err != nil {
		ctxutil.GetLogger(ctx).Warn("history record failed",
			"user_email", email,
			"error", err,
		)
	}
}
