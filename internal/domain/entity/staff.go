package entity

import "time"

// Staff is a librarian account that can sign in to the admin interface.
// Password holds the bcrypt hash, never the plaintext.
type Staff struct {
	ID        uint
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
