package schema

// UserTable represents the 'library.users' table
type UserTable struct {
	Table     string
	ID        string
	Username  string
	Email     string
	CreatedAt string
}

// User is the schema definition for library.users
var User = UserTable{
	Table:     "library.users",
	ID:        "id",
	Username:  "username",
	Email:     "email",
	CreatedAt: "created_at",
}

func (t UserTable) Columns() []string {
	return []string{t.ID, t.Username, t.Email, t.CreatedAt}
}
