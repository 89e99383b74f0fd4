package story

import "time"

// Story represents an abstract narrative work independent of language or
// printing.
type Story struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	// BasedOn references another Story this one derives from (adaptation,
	// retelling). The store does not detect cycles; the service rejects only
	// direct self-reference.
	BasedOn   *int64    `json:"based_on"`
	CreatedAt time.Time `json:"created_at"`
}

// StoryEdition is a version of a Story distinguished by language, translation,
// or adaptation.
type StoryEdition struct {
	ID                int64     `json:"id"`
	StoryID           int64     `json:"story_id"`
	EditionName       *string   `json:"edition_name"`
	EditionIdentifier *string   `json:"edition_identifier"`
	StoryEditionName  *string   `json:"story_edition_name"`
	Language          *string   `json:"language"`
	LanguageDialect   *string   `json:"language_dialect"`
	CreatedAt         time.Time `json:"created_at"`
}

// Contributor is the read-side view of a story edition credit: the prosoponym
// joined with its role label.
type Contributor struct {
	ID           int64  `json:"id"`
	ProsoponymID int64  `json:"prosoponym_id"`
	Name         string `json:"name"`
	Contribution string `json:"contribution"`
	Confidence   *int   `json:"confidence"`
}

// Filter holds the parameters for a paginated story search.
type Filter struct {
	Query string // substring match against name
}

// Field names for validation
const (
	FieldName     = "name"
	FieldBasedOn  = "based_on"
	FieldLanguage = "language"
)
