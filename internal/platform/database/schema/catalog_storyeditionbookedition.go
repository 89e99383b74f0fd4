package schema

// StoryEditionBookEditionTable represents the
// 'catalog.story_edition_book_edition' junction table.
type StoryEditionBookEditionTable struct {
	Table          string
	ID             string
	StoryEditionID string
	BookEditionID  string
	Confidence     string
}

// StoryEditionBookEdition is the schema definition for catalog.story_edition_book_edition
var StoryEditionBookEdition = StoryEditionBookEditionTable{
	Table:          "catalog.story_edition_book_edition",
	ID:             "id",
	StoryEditionID: "story_edition_id",
	BookEditionID:  "book_edition_id",
	Confidence:     "association_confidence",
}
