package schema

// ContributorTable represents the 'catalog.story_edition_contributor' junction
// table linking a story edition to a credited name with a role label.
type ContributorTable struct {
	Table          string
	ID             string
	StoryEditionID string
	ProsoponymID   string
	Contribution   string
	Confidence     string
}

// Contributor is the schema definition for catalog.story_edition_contributor
var Contributor = ContributorTable{
	Table:          "catalog.story_edition_contributor",
	ID:             "id",
	StoryEditionID: "story_edition_id",
	ProsoponymID:   "prosoponym_id",
	Contribution:   "contribution",
	Confidence:     "association_confidence",
}
