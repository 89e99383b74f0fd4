package schema

// StoryTable represents the 'catalog.story' table
type StoryTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	BasedOn   string
	CreatedAt string
}

// Story is the schema definition for catalog.story
var Story = StoryTable{
	Table:     "catalog.story",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	BasedOn:   "based_on",
	CreatedAt: "created_at",
}

func (t StoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.BasedOn, t.CreatedAt}
}
