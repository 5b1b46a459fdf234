// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package history

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/glossabay/glossa/internal/platform/request"
	"github.com/glossabay/glossa/internal/platform/respond"
	"github.com/glossabay/glossa/internal/platform/validate"
	"github.com/glossabay/glossa/pkg/langtag"
)

// # HTTP Delivery

// Handler implements the history HTTP endpoints.
type Handler struct {
	historyService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{historyService: service}
}

// Routes returns a [chi.Router] configured with history routes.
// The router is mount-relative; the server mounts it at /history.
//
// # Endpoints
//   - GET    / : Lists the user's recent translations.
//   - DELETE / : Clears the user's entire history.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Delete("/", handler.clear)
	return router
}

// entryView is an Entry enriched with human-readable language names, so
// the SPA does not need its own tag table.
type entryView struct {
	Entry
	SourceName string `json:"sourceName"`
	TargetName string `json:"targetName"`
}

type listResponse struct {
	Items []entryView `json:"items"`
	Total int         `json:"total"`
}

/*
List returns the authenticated user's recent translation history.

GET /history?limit=N

Request:
  - Header: Authorization: Bearer <token>
  - Query: limit (optional page size, server-clamped)

Response:
  - 200: listResponse: Items newest first, plus the total count
  - 400: Non-numeric limit
  - 401: Missing or invalid session token
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	limit := 0
	if raw := request.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respond.Error(writer, request, validate.RequiredError("limit", "Limit must be a non-negative integer"))
			return
		}
	}

	entries, total, err := handler.historyService.List(request.Context(), claims.Email, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entryView{
			Entry:      entry,
			SourceName: langtag.Display(entry.Source),
			TargetName: langtag.Display(entry.Target),
		})
	}

	respond.OK(writer, listResponse{Items: items, Total: total})
}

/*
Clear removes the authenticated user's entire history.

DELETE /history

Response:
  - 204: History cleared
  - 401: Missing or invalid session token
*/
func (handler *Handler) clear(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.historyService.Clear(request.Context(), claims.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
