// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkfarm/folio/internal/platform/apperr"
	"github.com/chalkfarm/folio/internal/platform/validate"
)

/*
TestValidator_PassingChain verifies that a chain with no failures returns nil.
*/
func TestValidator_PassingChain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "Pattern Recognition").
		MaxLen("name", "Pattern Recognition", 200).
		Range("confidence", 80, 0, 100).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_CollectsMultipleFailures verifies that every failed rule is
reported as its own field error in a single VALIDATION_ERROR.
*/
func TestValidator_CollectsMultipleFailures(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "   ").
		Range("confidence", 150, 0, 100).
		OneOf("contribution", "editor-in-chief", "author", "translator", "illustrator", "editor").
		Err()

	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Len(t, appError.Details, 3)
}

/*
TestValidator_Email verifies RFC 5322 address parsing.
*/
func TestValidator_Email(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "code@chalkfarm.mx", false},
		{"missing domain", "code@", true},
		{"not an address", "not-an-email", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.Email("email", tc.value).Err()

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestValidator_Custom verifies the escape hatch for domain-specific rules.
*/
func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}

	err := v.Custom("based_on", true, "Story cannot be based on itself").Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "based_on", appError.Details[0].Field)
}
