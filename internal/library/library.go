// Package library covers the lending side of the catalog: registered users,
// their collections, and the physical places books live in.
package library

import "time"

// User is a registered library member. No credentials are stored; identity
// comes from outside the system.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// PhysicalStorage is a place where physical book editions are kept. The
// machine-readable fields back label printing and scanning workflows.
type PhysicalStorage struct {
	ID                       int64  `json:"id"`
	Type                     string `json:"type"`
	HumanReadableName        string `json:"human_readable_name"`
	HumanReadableDescription string `json:"human_readable_description"`
	HumanReadableLocation    string `json:"human_readable_location"`
	MachineReadableName      string `json:"machine_readable_name"`
	MachineReadableLocation  string `json:"machine_readable_location"`
}

// Collection is a named set of book editions owned by a user.
type Collection struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CollectionItem places a book edition in a collection.
type CollectionItem struct {
	CollectionID  int64     `json:"collection_id"`
	BookEditionID int64     `json:"book_edition_id"`
	AddedAt       time.Time `json:"added_at"`
}

// Field names for validation
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldName        = "name"
	FieldUserID      = "user_id"
	FieldStorageType = "type"
	FieldHumanName   = "human_readable_name"
	FieldMachineName = "machine_readable_name"
)
