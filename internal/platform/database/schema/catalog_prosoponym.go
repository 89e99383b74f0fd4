package schema

// ProsoponymTable represents the 'catalog.prosoponym' table
type ProsoponymTable struct {
	Table        string
	ID           string
	Name         string
	Style        string
	IsPseudonym  string
	IsCollective string
	CreatedAt    string
}

// Prosoponym is the schema definition for catalog.prosoponym
var Prosoponym = ProsoponymTable{
	Table:        "catalog.prosoponym",
	ID:           "id",
	Name:         "name",
	Style:        "style",
	IsPseudonym:  "is_pseudonym",
	IsCollective: "is_collective",
	CreatedAt:    "created_at",
}

func (t ProsoponymTable) Columns() []string {
	return []string{t.ID, t.Name, t.Style, t.IsPseudonym, t.IsCollective, t.CreatedAt}
}
