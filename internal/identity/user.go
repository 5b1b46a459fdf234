// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

/*
Package identity implements the user identity layer of the translation platform.

It defines the core domain entity (User) and the signup/login logic that gates
access to the translation API.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no external
dependencies and encapsulates all business rules related to user identity:
unique emails, password strength, and the minimum-age policy.
*/
package identity

import (
	"time"
)

// # Domain Entities

// User represents a registered member of the Glossa platform.
//
// The email is the identity's unique key. PasswordHash is a salted bcrypt
// hash — the account secret is never stored or compared in plain text.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BirthDate    string    `json:"birthDate"` // YYYY-MM-DD
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the identity domain.
const (
	FieldName      = "name"
	FieldBirthDate = "birthDate"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldToken     = "token"
	FieldMessage   = "message"
)
