// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glossabay/glossa/internal/platform/apperr"
	"github.com/glossabay/glossa/internal/platform/dberr"
)

// # Durable User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
//
// Identities survive process restarts, and the unique-email invariant is
// enforced by a UNIQUE constraint rather than an in-memory scan.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new user record into the account table.

Description: Deep-persists account metadata, ensuring timestamps are initialized
if not provided. A duplicate email surfaces as apperr.Conflict via the unique
constraint, closing the check-then-create race in the service layer.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict, other constraint violations, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO account (
			id, name, birthdate, email, passwordhash, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Name,
		user.BirthDate,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "User already exists")
	}

	return nil
}

/*
FindByEmail retrieves a user record by their unique email address.

Description: Performs a lookup on the account table by the identity's
unique key.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, name, birthdate, email, passwordhash, createdat, updatedat
		FROM account
		WHERE email = $1`

	user := &User{}
	err := repository.pool.QueryRow(context, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.BirthDate,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_email_failed: %w", err)
	}

	return user, nil
}
