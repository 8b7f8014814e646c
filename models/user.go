package models

import "time"

// User is an account of the notes service.
type User struct {
	// UserID is the internal identifier assigned by the database.
	// It never leaves the server in a response body.
	UserID int64 `json:"-"`

	// Login is the unique user login.
	Login string `json:"login"`

	// Password is the plain-text password sent by the client on register and
	// login. It is cleared before the user is persisted or logged.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
