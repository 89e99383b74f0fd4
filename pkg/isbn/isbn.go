// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

// Package isbn canonicalizes loosely formatted ISBN strings.
//
// # Overview
//
// Identifiers arrive from users with hyphens, spaces, or padding
// ("0-425-19293-8", " 978 2846260725 "). Canonical form is the bare digit
// sequence, which is what the book_edition columns store and what the remote
// bibliographic service is keyed by.
//
// Check digits are deliberately NOT verified: any 10- or 13-digit sequence is
// accepted as well-formed. The resolver treats the remote service as the
// authority on whether an identifier exists.
package isbn

import (
	"errors"
	"fmt"
	"strings"
)

// Canonical digit lengths for the two ISBN generations.
const (
	LengthISBN10 = 10
	LengthISBN13 = 13
)

// ErrInvalidFormat is returned when an identifier does not reduce to exactly
// 10 or 13 digits. Match it with [errors.Is].
var ErrInvalidFormat = errors.New("isbn: must be 10 or 13 digits")

// Normalize strips every non-digit character from raw and returns the
// canonical digit string.
//
// It is idempotent: Normalize(Normalize(x)) == Normalize(x) for any input
// that normalizes successfully.
func Normalize(raw string) (string, error) {
	var digits strings.Builder
	digits.Grow(LengthISBN13)

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	canonical := digits.String()
	if len(canonical) != LengthISBN10 && len(canonical) != LengthISBN13 {
		return "", fmt.Errorf("%w: %q has %d digits", ErrInvalidFormat, canonical, len(canonical))
	}

	return canonical, nil
}

// IsCanonical reports whether s is already in canonical form.
func IsCanonical(s string) bool {
	if len(s) != LengthISBN10 && len(s) != LengthISBN13 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
