// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossabay/glossa/internal/platform/constants"
	"github.com/glossabay/glossa/internal/translation"
)

func recordSamples(t *testing.T, service *Service, email string, count int) {
	t.Helper()
	for index := 0; index < count; index++ {
		err := service.Record(context.Background(), email,
			translation.Request{Text: fmt.Sprintf("hello %d", index), Source: "en", Target: "fr"},
			translation.Result{Translated: fmt.Sprintf("bonjour %d", index), Provider: "primary-1", Success: true},
		)
		require.NoError(t, err)
	}
}

func TestService_RecordAndList(t *testing.T) {
	service := NewService(NewMemoryEntryStore())
	recordSamples(t, service, "ann@x.com", 3)

	err := service.Record(context.Background(), "ann@x.com",
		translation.Request{Text: "help", Source: "en", Target: "de"},
		translation.Result{
			Translated: "help" + constants.UnavailableSuffix,
			Provider:   constants.ProviderExhaustedSentinel,
			Success:    false,
		},
	)
	require.NoError(t, err)

	entries, total, err := service.List(context.Background(), "ann@x.com", 0)
	require.NoError(t, err)

	assert.Equal(t, 4, total)
	require.Len(t, entries, 4)

	// Newest first; the degraded outcome is on the timeline too.
	newest := entries[0]
	assert.Equal(t, "help", newest.Text)
	assert.False(t, newest.Success)
	assert.Equal(t, constants.ProviderExhaustedSentinel, newest.Provider)
	assert.NotEmpty(t, newest.ID)
	assert.False(t, newest.CreatedAt.IsZero())
}

func TestService_ListIsScopedPerUser(t *testing.T) {
	service := NewService(NewMemoryEntryStore())
	recordSamples(t, service, "ann@x.com", 2)
	recordSamples(t, service, "bob@x.com", 5)

	entries, total, err := service.List(context.Background(), "ann@x.com", 0)
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "ann@x.com", entry.UserEmail)
	}
}

func TestService_ListClampsLimit(t *testing.T) {
	service := NewService(NewMemoryEntryStore())
	recordSamples(t, service, "ann@x.com", constants.DefaultHistoryLimit+10)

	entries, total, err := service.List(context.Background(), "ann@x.com", 0)
	require.NoError(t, err)
	assert.Len(t, entries, constants.DefaultHistoryLimit)
	assert.Equal(t, constants.DefaultHistoryLimit+10, total)

	entries, _, err = service.List(context.Background(), "ann@x.com", 5)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	entries, _, err = service.List(context.Background(), "ann@x.com", constants.MaxHistoryLimit+1000)
	require.NoError(t, err)
	assert.Len(t, entries, constants.DefaultHistoryLimit+10, "clamped cap still covers the whole timeline here")
}

func TestService_Clear(t *testing.T) {
	service := NewService(NewMemoryEntryStore())
	recordSamples(t, service, "ann@x.com", 3)
	recordSamples(t, service, "bob@x.com", 1)

	require.NoError(t, service.Clear(context.Background(), "ann@x.com"))

	_, total, err := service.List(context.Background(), "ann@x.com", 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, total, err = service.List(context.Background(), "bob@x.com", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total, "clearing one user must not touch another")
}
