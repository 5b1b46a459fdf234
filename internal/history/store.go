// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package history

import "context"

// # Persistence Contract

/*
EntryStore abstracts the persistence mechanism for translation history.

Two implementations exist: [PostgresEntryStore] for durable deployments and
[MemoryEntryStore] when no database is configured.
*/
type EntryStore interface {
	// Insert appends one entry. The entry's ID and CreatedAt are expected
	// to be populated by the caller.
	Insert(ctx context.Context, entry *Entry) error

	// ListByEmail returns the user's most recent entries, newest first,
	// capped at limit.
	ListByEmail(ctx context.Context, email string, limit int) ([]Entry, error)

	// CountByEmail returns the user's total entry count, independent of
	// any listing limit.
	CountByEmail(ctx context.Context, email string) (int, error)

	// DeleteByEmail removes every entry belonging to the user.
	DeleteByEmail(ctx context.Context, email string) error
}
