package person

import "time"

// Person is an identity distinct from any of its credited names. It carries
// no attributes of its own; everything human-readable lives on Prosoponym.
type Person struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Prosoponym is a name as it appears in a credit, not necessarily a unique
// real person. "Richard Bachman" and "Stephen King" are two prosoponyms that
// may share one Person.
type Prosoponym struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Style        string    `json:"style"`
	IsPseudonym  bool      `json:"is_pseudonym"`
	IsCollective bool      `json:"is_collective"`
	CreatedAt    time.Time `json:"created_at"`
}

// NameLink is the many-to-many association between a Person and a Prosoponym.
type NameLink struct {
	PersonID      int64 `json:"person_id"`
	ProsoponymID  int64 `json:"prosoponym_id"`
	BestKnownAs   bool  `json:"best_known_as"`
	WidelyKnownAs bool  `json:"widely_known_as"`
	Confidence    *int  `json:"confidence"`
}

// Filter holds the parameters for a paginated prosoponym search.
type Filter struct {
	Query string // substring match against name
}

// Field names for validation
const (
	FieldName  = "name"
	FieldStyle = "style"
)

// StyleAnglo is the default name style assigned to credits materialized from
// remote payloads, which carry no styling information.
const StyleAnglo = "anglo"
