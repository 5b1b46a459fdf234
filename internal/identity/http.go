// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

/*
Package identity also provides the HTTP delivery layer for account management.

The handler acts as a thin mediation layer between the web and the domain
service:
  - Protocol: Standard RESTful JSON interface with flat response bodies.
  - Security: Returns the signed session token the SPA stores client-side.
  - Verification: All input policy lives in [Service]; this layer only decodes.

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package identity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/glossabay/glossa/internal/platform/request"
	"github.com/glossabay/glossa/internal/platform/respond"
	"github.com/glossabay/glossa/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	identityService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{identityService: service}
}

// Routes returns a [chi.Router] configured with identity-specific routes.
//
// # Endpoints
//   - POST /signup : Creates a new account and returns a session token.
//   - POST /login  : Authenticates and returns a session token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints — these are the only unauthenticated entry points
	// besides the health probes.
	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)

	return router
}

// # Request Payloads

type signupRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionResponse is the flat body the SPA persists in local storage.
type sessionResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Message   string `json:"message"`
}

/*
Signup handles the creation of a new user account.

POST /signup

Description: Decodes input and delegates to the service, which validates the
registration policy, checks for identity conflicts, and persists a new user.

Request:
  - Body: signupRequest (Name, BirthDate, Email, Password)

Response:
  - 200: sessionResponse: Token plus profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.identityService.Signup(request.Context(), SignupInput{
		Name:      input.Name,
		BirthDate: input.BirthDate,
		Email:     input.Email,
		Password:  input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionResponse{
		Token:     session.Token,
		Email:     session.Email,
		Name:      session.Name,
		BirthDate: session.BirthDate,
		Message:   "Signup successful",
	})
}

/*
Login authenticates a user and establishes a session.

POST /login

Description: Verifies credentials and returns a fresh two-hour session token.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: sessionResponse: Token plus profile
  - 400: ErrInvalidJSON: Missing fields
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.identityService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionResponse{
		Token:     session.Token,
		Email:     session.Email,
		Name:      session.Name,
		BirthDate: session.BirthDate,
		Message:   "Login successful",
	})
}
