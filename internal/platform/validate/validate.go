// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/glossabay/glossa/internal/platform/apperr"
)

var (
	// emailRegex matches the deliberately simple local@domain.tld shape.
	// The platform does not attempt full RFC 5322 validation; anything with
	// a local part, an @, and a dotted domain is accepted.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// BirthDateLayout is the wire format for birth dates.
const BirthDateLayout = "2006-01-02"

// MinimumAge is the youngest age allowed to register an account.
const MinimumAge = 13

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count of the trimmed value is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Email fails if the value does not match the local@domain.tld shape.
func (v *Validator) Email(field, value string) *Validator {
	if !emailRegex.MatchString(value) {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Password fails unless the value is at least min characters long and
// contains both a letter and a digit.
func (v *Validator) Password(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Must be at least %d characters long", min))
		return v
	}

	var hasLetter, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		v.add(field, "Must contain at least one letter and one number")
	}
	return v
}

// BirthDate fails unless the value parses as a calendar date (YYYY-MM-DD)
// that is not in the future and implies an age of at least [MinimumAge].
//
// # Age Computation
//
// Age is the calendar-year difference, decremented when the birthday month/day
// has not yet been reached this year.
func (v *Validator) BirthDate(field, value string) *Validator {
	birth, err := time.Parse(BirthDateLayout, value)
	if err != nil {
		v.add(field, "Must be a valid date in YYYY-MM-DD format")
		return v
	}

	now := time.Now()
	if birth.After(now) {
		v.add(field, "Must not be in the future")
		return v
	}

	age := now.Year() - birth.Year()
	if int(now.Month()) < int(birth.Month()) ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	if age < MinimumAge {
		v.add(field, fmt.Sprintf("You must be at least %d years old", MinimumAge))
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("limit", limit < 1, "Must be positive")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
