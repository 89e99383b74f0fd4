package schema

// BookEditionTable represents the 'catalog.book_edition' table
type BookEditionTable struct {
	Table               string
	ID                  string
	Name                string
	NameLong            string
	Logline             string
	ISBN                string
	ISBN13              string
	ISBNUnknown         string
	ISBNShouldExist     string
	PublishedExactDay   string
	PublishedRangeStart string
	PublishedRangeEnd   string
	Physical            string
	Description         string
	CreatedAt           string
}

// BookEdition is the schema definition for catalog.book_edition.
// The isbn and isbn13 columns carry partial unique indexes (see migration
// 0001) so that two concurrent resolutions cannot materialize duplicates.
var BookEdition = BookEditionTable{
	Table:               "catalog.book_edition",
	ID:                  "id",
	Name:                "name",
	NameLong:            "name_long",
	Logline:             "logline",
	ISBN:                "isbn",
	ISBN13:              "isbn13",
	ISBNUnknown:         "isbn_unknown",
	ISBNShouldExist:     "isbn_should_exist",
	PublishedExactDay:   "published_exact_day",
	PublishedRangeStart: "published_range_start",
	PublishedRangeEnd:   "published_range_end",
	Physical:            "physical",
	Description:         "human_readable_description",
	CreatedAt:           "created_at",
}

func (t BookEditionTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.NameLong, t.Logline, t.ISBN, t.ISBN13, t.ISBNUnknown, t.ISBNShouldExist,
		t.PublishedExactDay, t.PublishedRangeStart, t.PublishedRangeEnd, t.Physical, t.Description, t.CreatedAt,
	}
}
