package models

import "time"

// AuthorDB represents an author row in the database.
type AuthorDB struct {
	AuthorID     int64     `json:"id" db:"id"`                 // Primary key
	FirstName    string    `json:"first_name" db:"first_name"` // Given name
	LastName     string    `json:"last_name" db:"last_name"`   // Family name
	Username     string    `json:"username" db:"username"`     // Unique login name
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// FullName joins first and last name, falling back to the username.
func (a AuthorDB) FullName() string {
	switch {
	case a.FirstName != "" && a.LastName != "":
		return a.FirstName + " " + a.LastName
	case a.FirstName != "":
		return a.FirstName
	case a.LastName != "":
		return a.LastName
	default:
		return a.Username
	}
}
