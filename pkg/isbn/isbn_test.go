// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

package isbn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkfarm/folio/pkg/isbn"
)

func TestNormalize_AcceptsWellFormedIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"hyphenated isbn10", "0-425-19293-8", "0425192938"},
		{"bare isbn10", "0425192938", "0425192938"},
		{"isbn13 with spaces", " 978 2846260725", "9782846260725"},
		{"isbn13 with prefix hyphen", "978-2846260725", "9782846260725"},
		{"x-less sequence with junk", "ISBN:0425192938", "0425192938"},
		// Wrong check digit is still well-formed: checksums are not verified.
		{"bad check digit", "0-425-19293-9", "0425192939"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := isbn.Normalize(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_RejectsMalformedIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"letters only", "not-an-isbn"},
		{"nine digits", "123456789"},
		{"eleven digits", "12345678901"},
		{"twelve digits", "123456789012"},
		{"fourteen digits", "12345678901234"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := isbn.Normalize(tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, isbn.ErrInvalidFormat))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"0-425-19293-8", "9782846260725", "978-0-7653-8669-4"}

	for _, raw := range inputs {
		once, err := isbn.Normalize(raw)
		require.NoError(t, err)

		twice, err := isbn.Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, isbn.IsCanonical("0425192938"))
	assert.True(t, isbn.IsCanonical("9782846260725"))
	assert.False(t, isbn.IsCanonical("0-425-19293-8"))
	assert.False(t, isbn.IsCanonical("123456789"))
	assert.False(t, isbn.IsCanonical(""))
}
