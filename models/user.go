package models

// User represents a registered account.
// The password is only ever kept as a one-way hash.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is generated by the database and never exposed via JSON.
	UserID int64 `json:"-" db:"id"`

	// Name is the display name of the user.
	Name string `json:"name" db:"name"`

	// Email is the unique contact address of the user.
	Email string `json:"email" db:"email"`

	// Username is the unique login used for authentication and in
	// dashboard URLs.
	Username string `json:"username" db:"username"`

	// PasswordHash is the salted one-way hash of the user's password.
	// It must never leave the server.
	PasswordHash string `json:"-" db:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
