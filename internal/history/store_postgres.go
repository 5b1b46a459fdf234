// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// # Durable Entry Store

// PostgresEntryStore implements the EntryStore interface using pgx.
type PostgresEntryStore struct {
	pool *pgxpool.Pool
}

// NewPostgresEntryStore creates a new PostgreSQL implementation of the EntryStore.
func NewPostgresEntryStore(pool *pgxpool.Pool) *PostgresEntryStore {
	return &PostgresEntryStore{pool: pool}
}

// Insert implements EntryStore.
func (store *PostgresEntryStore) Insert(ctx context.Context, entry *Entry) error {
	const query = `
		INSERT INTO history (
			id, useremail, sourcetext, translatedtext, sourcelang, targetlang, provider, success, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := store.pool.Exec(ctx, query,
		entry.ID,
		entry.UserEmail,
		entry.Text,
		entry.Translated,
		entry.Source,
		entry.Target,
		entry.Provider,
		entry.Success,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("history_store_insert_failed: %w", err)
	}

	return nil
}

// ListByEmail implements EntryStore. Entries come back newest first.
func (store *PostgresEntryStore) ListByEmail(ctx context.Context, email string, limit int) ([]Entry, error) {
	const query = `
		SELECT id, useremail, sourcetext, translatedtext, sourcelang, targetlang, provider, success, createdat
		FROM history
		WHERE useremail = $1
		ORDER BY createdat DESC
		LIMIT $2`

	rows, err := store.pool.Query(ctx, query, email, limit)
	if err != nil {
		return nil, fmt.Errorf("history_store_list_failed: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserEmail,
			&entry.Text,
			&entry.Translated,
			&entry.Source,
			&entry.Target,
			&entry.Provider,
			&entry.Success,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("history_store_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history_store_rows_failed: %w", err)
	}

	return entries, nil
}

// CountByEmail implements EntryStore.
func (store *PostgresEntryStore) CountByEmail(ctx context.Context, email string) (int, error) {
	const query = `SELECT COUNT(*) FROM history WHERE useremail = $1`

	var total int
	if err := store.pool.QueryRow(ctx, query, email).Scan(&total); err != nil {
		return 0, fmt.Errorf("history_store_count_failed: %w", err)
	}

	return total, nil
}

// DeleteByEmail implements EntryStore.
func (store *PostgresEntryStore) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM history WHERE useremail = $1`

	if _, err := store.pool.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("history_store_delete_failed: %w", err)
	}

	return nil
}
