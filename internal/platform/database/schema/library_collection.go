package schema

// CollectionTable represents the 'library.collection' table
type CollectionTable struct {
	Table     string
	ID        string
	UserID    string
	Name      string
	CreatedAt string
}

// Collection is the schema definition for library.collection
var Collection = CollectionTable{
	Table:     "library.collection",
	ID:        "id",
	UserID:    "user_id",
	Name:      "name",
	CreatedAt: "created_at",
}

// CollectionItemTable represents the 'library.collection_item' junction table.
// Composite primary key (collection_id, book_edition_id).
type CollectionItemTable struct {
	Table         string
	CollectionID  string
	BookEditionID string
	AddedAt       string
}

// CollectionItem is the schema definition for library.collection_item
var CollectionItem = CollectionItemTable{
	Table:         "library.collection_item",
	CollectionID:  "collection_id",
	BookEditionID: "book_edition_id",
	AddedAt:       "added_at",
}
