// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chalkfarm/folio/pkg/slug"
)

func TestFrom(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "Pattern Recognition", "pattern-recognition"},
		{"accented french title", "Identification des Schémas", "identification-des-schemas"},
		{"punctuation", "Neuromancer: The Sprawl!", "neuromancer-the-sprawl"},
		{"multiple spaces", "All  Tomorrow's   Parties", "all-tomorrow-s-parties"},
		{"leading and trailing junk", "  --Zero History--  ", "zero-history"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.From(tc.input))
		})
	}
}
