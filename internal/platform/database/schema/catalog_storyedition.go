package schema

// StoryEditionTable represents the 'catalog.story_edition' table
type StoryEditionTable struct {
	Table             string
	ID                string
	StoryID           string
	EditionName       string
	EditionIdentifier string
	StoryEditionName  string
	Language          string
	LanguageDialect   string
	CreatedAt         string
}

// StoryEdition is the schema definition for catalog.story_edition
var StoryEdition = StoryEditionTable{
	Table:             "catalog.story_edition",
	ID:                "id",
	StoryID:           "story_id",
	EditionName:       "edition_name",
	EditionIdentifier: "edition_identifier",
	StoryEditionName:  "story_edition_name",
	Language:          "language",
	LanguageDialect:   "language_dialect",
	CreatedAt:         "created_at",
}

func (t StoryEditionTable) Columns() []string {
	return []string{t.ID, t.StoryID, t.EditionName, t.EditionIdentifier, t.StoryEditionName, t.Language, t.LanguageDialect, t.CreatedAt}
}
