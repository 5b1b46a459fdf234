// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package history

import (
	"context"
	"sync"
)

// # Volatile Entry Store

// MemoryEntryStore implements the EntryStore interface in process memory.
// Used when no database is configured; entries do not survive restarts.
type MemoryEntryStore struct {
	mutex   sync.RWMutex
	entries []Entry
}

// NewMemoryEntryStore creates an empty in-memory entry store.
func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{}
}

// Insert implements EntryStore.
func (store *MemoryEntryStore) Insert(_ context.Context, entry *Entry) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	store.entries = append(store.entries, *entry)
	return nil
}

// ListByEmail implements EntryStore. Entries are appended in arrival order,
// so the newest-first view walks the slice backwards.
func (store *MemoryEntryStore) ListByEmail(_ context.Context, email string, limit int) ([]Entry, error) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	listed := make([]Entry, 0, limit)
	for index := len(store.entries) - 1; index >= 0 && len(listed) < limit; index-- {
		if store.entries[index].UserEmail == email {
			listed = append(listed, store.entries[index])
		}
	}

	return listed, nil
}

// CountByEmail implements EntryStore.
func (store *MemoryEntryStore) CountByEmail(_ context.Context, email string) (int, error) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	total := 0
	for _, entry := range store.entries {
		if entry.UserEmail == email {
			total++
		}
	}

	return total, nil
}

// DeleteByEmail implements EntryStore.
func (store *MemoryEntryStore) DeleteByEmail(_ context.Context, email string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	kept := store.entries[:0]
	for _, entry := range store.entries {
		if entry.UserEmail != email {
			kept = append(kept, entry)
		}
	}
	store.entries = kept

	return nil
}
