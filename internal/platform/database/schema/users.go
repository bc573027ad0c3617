package schema

// UserTable represents the 'users' table
type UserTable struct {
	Table        string
	ID           string
	Email        string
	Nickname     string
	PasswordHash string
	Role         string
	Image        string
	IsBlocked    string
	CreatedAt    string
}

// User is the schema definition for users
var User = UserTable{
	Table:        "users",
	ID:           "id",
	Email:        "email",
	Nickname:     "nickname",
	PasswordHash: "passwordhash",
	Role:         "role",
	Image:        "image",
	IsBlocked:    "isblocked",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t UserTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Nickname, t.PasswordHash, t.Role,
		t.Image, t.IsBlocked, t.CreatedAt,
	}
}
