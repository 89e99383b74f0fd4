package schema

// PersonTable represents the 'catalog.person' table
type PersonTable struct {
	Table     string
	ID        string
	CreatedAt string
}

// Person is the schema definition for catalog.person
var Person = PersonTable{
	Table:     "catalog.person",
	ID:        "id",
	CreatedAt: "created_at",
}
