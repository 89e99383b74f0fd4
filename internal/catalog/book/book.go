package book

import "time"

// BookEdition is a physically/commercially distinct printing of a story
// edition. It is the only entity keyed by ISBN; the resolver's local lookup
// terminates here.
type BookEdition struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name"`
	NameLong *string `json:"name_long"`
	Logline  *string `json:"logline"`

	// ISBN and ISBN13 hold canonical digit strings (see pkg/isbn). Empty
	// string means "not assigned", never NULL, so the partial unique indexes
	// stay simple.
	ISBN            string `json:"isbn"`
	ISBN13          string `json:"isbn13"`
	ISBNUnknown     bool   `json:"isbn_unknown"`
	ISBNShouldExist bool   `json:"isbn_should_exist"`

	PublishedExactDay   *time.Time `json:"published_exact_day"`
	PublishedRangeStart *time.Time `json:"published_range_start"`
	PublishedRangeEnd   *time.Time `json:"published_range_end"`

	Physical                 bool      `json:"physical"`
	HumanReadableDescription string    `json:"human_readable_description"`
	CreatedAt                time.Time `json:"created_at"`
}

// StoryEditionLink associates a story edition with a book edition. A story
// edition can appear in many printings (hardcover, paperback, omnibus).
type StoryEditionLink struct {
	ID             int64 `json:"id"`
	StoryEditionID int64 `json:"story_edition_id"`
	BookEditionID  int64 `json:"book_edition_id"`
	Confidence     *int  `json:"confidence"`
}

// Filter holds the parameters for a paginated book edition search.
type Filter struct {
	// ISBN restricts the list to editions matching either isbn column.
	// Expected in canonical form.
	ISBN string
	// PhysicalOnly excludes non-physical editions (e-books) when true.
	PhysicalOnly bool
}

// Field names for validation
const (
	FieldName           = "name"
	FieldISBN           = "isbn"
	FieldISBN13         = "isbn13"
	FieldStoryEditionID = "story_edition_id"
	FieldConfidence     = "confidence"
)
