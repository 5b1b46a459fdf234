// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossabay/glossa/internal/platform/apperr"
	"github.com/glossabay/glossa/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Glossa", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the simple local@domain.tld email rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"missing_at", "invalid-email", false},
		{"missing_tld", "test@example", false},
		{"contains_space", "te st@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Password checks the length and composition rules.
*/
func TestValidator_Password(t *testing.T) {
	tests := []struct {
		name     string
		password string
		isValid  bool
	}{
		{"letter_and_digit", "secret12", true},
		{"too_short", "ab1", false},
		{"digits_only", "12345678", false},
		{"letters_only", "abcdefgh", false},
		{"unicode_letters_with_digit", "pässwörd1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Password("password", tt.password, 8)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_BirthDate checks date parsing, the future guard, and the
minimum-age rule.
*/
func TestValidator_BirthDate(t *testing.T) {
	now := time.Now()
	future := now.AddDate(1, 0, 0).Format(validate.BirthDateLayout)
	tooYoung := now.AddDate(-12, 0, 0).Format(validate.BirthDateLayout)
	oldEnough := now.AddDate(-20, 0, 0).Format(validate.BirthDateLayout)
	// Born exactly 13 years ago tomorrow: birthday not yet reached, so age is 12.
	almostThirteen := now.AddDate(-13, 0, 1).Format(validate.BirthDateLayout)

	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"adult", oldEnough, true},
		{"garbage", "not-a-date", false},
		{"wrong_layout", "05/05/2005", false},
		{"future", future, false},
		{"under_thirteen", tooYoung, false},
		{"birthday_not_reached", almostThirteen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.BirthDate("birthDate", tt.value)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("name", "Ann Lee").
		MinLen("name", "Ann Lee", 3).
		MaxLen("name", "Ann Lee", 50).
		Email("email", "ann@x.com").
		Password("password", "secret12", 8).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").               // Fails
		MinLen("name", "a", 3).             // Fails
		Email("email", "not-an-email").     // Fails
		Password("password", "short", 8).   // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 4 errors
	assert.Len(t, ae.Details, 4)
}
