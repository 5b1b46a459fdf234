// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glossabay/glossa/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The conflictMessage is used when the error is a unique-constraint violation;
// the identity store relies on this to enforce the unique-email invariant at
// the storage layer rather than only in the service check.
func Wrap(err error, conflictMessage string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Unique violation mapping (SQLSTATE 23505)
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
		return apperr.Conflict(conflictMessage)
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
