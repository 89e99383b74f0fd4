package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chalkfarm/folio/internal/isbndb"
)

func TestStoredIdentifiers(t *testing.T) {
	cases := []struct {
		name       string
		canonical  string
		payload10  string
		payload13  string
		wantISBN   string
		wantISBN13 string
	}{
		{
			name:       "payload echoes both columns",
			canonical:  "9780425192931",
			payload10:  "0425192938",
			payload13:  "9780425192931",
			wantISBN:   "0425192938",
			wantISBN13: "9780425192931",
		},
		{
			name:       "thirteen digit lookup answered with only the ten digit form",
			canonical:  "9780425192931",
			payload10:  "0425192938",
			payload13:  "",
			wantISBN:   "0425192938",
			wantISBN13: "9780425192931",
		},
		{
			name:       "ten digit lookup answered with only the thirteen digit form",
			canonical:  "0425192938",
			payload10:  "",
			payload13:  "9780425192931",
			wantISBN:   "0425192938",
			wantISBN13: "9780425192931",
		},
		{
			name:       "payload carries identifiers that match neither lookup",
			canonical:  "9780425192931",
			payload10:  "0316853194",
			payload13:  "9780316853194",
			wantISBN:   "0316853194",
			wantISBN13: "9780425192931",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			payload := &isbndb.Book{ISBN: c.payload10, ISBN13: c.payload13}

			isbn10, isbn13 := storedIdentifiers(c.canonical, payload)

			assert.Equal(t, c.wantISBN, isbn10)
			assert.Equal(t, c.wantISBN13, isbn13)
			assert.True(t, isbn10 == c.canonical || isbn13 == c.canonical,
				"the queried identifier must land in one of the stored columns")
		})
	}
}

func TestTruncateRunesKeepsShortTitles(t *testing.T) {
	assert.Equal(t, "Neuromancer", truncateRunes("Neuromancer", 120))
	assert.Equal(t, "сюже", truncateRunes("сюжет", 4))
}
