// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package identity

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// The identity store is append-only from the service's point of view:
// accounts are created on signup and never mutated afterwards.
type UserRepository interface {

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Implementations must enforce the unique-email invariant and return
		an apperr.Conflict when it is violated.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict or persistence failures
	*/
	Create(context context.Context, user *User) error
}
