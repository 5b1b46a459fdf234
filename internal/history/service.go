// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package history

import (
	"context"
	"fmt"
	"time"

	"github.com/glossabay/glossa/internal/platform/constants"
	"github.com/glossabay/glossa/internal/translation"
	"github.com/glossabay/glossa/pkg/uuid"
)

// # Service Layer

// Service exposes history operations and doubles as the translation
// handler's sink.
type Service struct {
	entryStore EntryStore
}

// NewService constructs a new [Service] with its store dependency.
func NewService(store EntryStore) *Service {
	return &Service{entryStore: store}
}

/*
Record appends one translation outcome to the user's history.

Implements translation.HistorySink. Degraded outcomes are recorded too:
the user's timeline should show what they asked for even when every
provider was down.

Parameters:
  - ctx: context.Context
  - email: owner of the history timeline.
  - request: the original translation request.
  - result: the chain outcome, accepted or degraded.

Returns:
  - error: persistence failure; callers treat it as best-effort.
*/
func (service *Service) Record(ctx context.Context, email string, request translation.Request, result translation.Result) error {
	entry := &Entry{
		ID:         uuid.Must(),
		UserEmail:  email,
		Text:       request.Text,
		Translated: result.Translated,
		Source:     request.Source,
		Target:     request.Target,
		Provider:   result.Provider,
		Success:    result.Success,
		CreatedAt:  time.Now(),
	}

	if err := service.entryStore.Insert(ctx, entry); err != nil {
		return fmt.Errorf("history_service_record_failed: %w", err)
	}

	return nil
}

/*
List returns the user's most recent entries plus their total count.

A non-positive limit falls back to the default page size; anything above
the cap is clamped.

Returns:
  - []Entry: newest first, at most limit entries.
  - int: total entries on the timeline, independent of limit.
  - error: persistence failure.
*/
func (service *Service) List(ctx context.Context, email string, limit int) ([]Entry, int, error) {
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}
	if limit > constants.MaxHistoryLimit {
		limit = constants.MaxHistoryLimit
	}

	entries, err := service.entryStore.ListByEmail(ctx, email, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("history_service_list_failed: %w", err)
	}

	total, err := service.entryStore.CountByEmail(ctx, email)
	if err != nil {
		return nil, 0, fmt.Errorf("history_service_count_failed: %w", err)
	}

	return entries, total, nil
}

// Clear removes the user's entire history.
func (service *Service) Clear(ctx context.Context, email string) error {
	if err := service.entryStore.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("history_service_clear_failed: %w", err)
	}
	return nil
}
