package schema

// NamesAssociationTable represents the 'catalog.names_association' junction table.
// Composite primary key (person_id, prosoponym_id).
type NamesAssociationTable struct {
	Table         string
	PersonID      string
	ProsoponymID  string
	BestKnownAs   string
	WidelyKnownAs string
	Confidence    string
}

// NamesAssociation is the schema definition for catalog.names_association
var NamesAssociation = NamesAssociationTable{
	Table:         "catalog.names_association",
	PersonID:      "person_id",
	ProsoponymID:  "prosoponym_id",
	BestKnownAs:   "best_known_as",
	WidelyKnownAs: "widely_known_as",
	Confidence:    "association_confidence",
}
