// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/glossabay/glossa/internal/platform/apperr"
	"github.com/glossabay/glossa/internal/platform/constants"
	"github.com/glossabay/glossa/internal/platform/sec"
	"github.com/glossabay/glossa/internal/platform/validate"
	"github.com/glossabay/glossa/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating session tokens.
type TokenProvider interface {
	// IssueSessionToken creates a signed session token for the given user.
	//
	// # Parameters
	//   - email: The unique email of the account.
	//   - name: The display name of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed token string, or an err if signing fails.
	IssueSessionToken(email, name string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or login logic must be reviewed carefully: the translation endpoint is
// only as protected as the tokens issued here.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new identity [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// SignupInput holds the data required to enroll a new member.
type SignupInput struct {
	Name      string
	BirthDate string
	Email     string
	Password  string
}

// Session represents a successfully authenticated identity plus its token.
//
// The token is self-contained: it encodes the email, display name, and a
// two-hour expiry, and is verified without any server-side session state.
type Session struct {
	Token     string
	Email     string
	Name      string
	BirthDate string
}

/*
Signup validates, hashes, and persists a brand new user account, then
issues a session token so the client is logged in immediately.

Description: Deep-enrollment of a new member, handling input policy,
password hashing, and the unique-email invariant.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *Session: Token plus identity profile
  - err: Validation, Conflict (if identity exists), or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*Session, error) {

	// Enforce the registration policy before touching storage.
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MinLen(FieldName, input.Name, 3).
		Required(FieldBirthDate, input.BirthDate).
		BirthDate(FieldBirthDate, input.BirthDate).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		Password(FieldPassword, input.Password, 8)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("User already exists")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("identity_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		BirthDate:    input.BirthDate,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// Persist the user. The store enforces unique-email a second time at the
	// constraint level, which closes the check-then-create race.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return service.openSession(user)
}

// # Authentication Flow

/*
Login validates user credentials and issues a session token.

Description: Verifies identity via bcrypt's constant-time hash comparison
and returns a fresh two-hour session token.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *Session: Token plus identity profile
  - err: Validation, Unauthorized, or internal failures
*/
func (service *Service) Login(context context.Context, email, password string) (*Session, error) {

	// Both credentials are mandatory.
	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).
		Required(FieldPassword, password)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// If the user does not exist, use a generic message to prevent enumeration.
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks.
	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	return service.openSession(user)
}

// openSession issues a signed session token for the user and assembles the
// transport-ready Session.
func (service *Service) openSession(user *User) (*Session, error) {
	token, err := service.tokenProvider.IssueSessionToken(user.Email, user.Name, constants.SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("identity_service_token_generation_failed: %w", err)
	}

	return &Session{
		Token:     token,
		Email:     user.Email,
		Name:      user.Name,
		BirthDate: user.BirthDate,
	}, nil
}
