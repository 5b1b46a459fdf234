// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package identity

import (
	"context"
	"sync"

	"github.com/glossabay/glossa/internal/platform/apperr"
)

// # Volatile User Repository

// MemoryUserRepository implements UserRepository with a process-local,
// append-only collection.
//
// Accounts reset on restart. It backs the server when DATABASE_URL is
// unset and is the store
// of choice in unit tests. All access is serialized by a mutex, which is
// the only locking the platform needs — the store is the sole piece of
// shared mutable state in the request path.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []*User
}

// NewMemoryUserRepository creates an empty volatile user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

// Create appends a new account, enforcing the unique-email invariant.
func (repository *MemoryUserRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.users {
		if existing.Email == user.Email {
			return apperr.Conflict("User already exists")
		}
	}

	repository.users = append(repository.users, user)
	return nil
}

// FindByEmail scans the collection for an exact email match.
func (repository *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, user := range repository.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, apperr.NotFound("User")
}

// Len reports the number of stored accounts. Test helper.
func (repository *MemoryUserRepository) Len() int {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return len(repository.users)
}
