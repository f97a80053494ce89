// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Member is a registered library patron. Members are referenced by loans
// and fines through their numeric ID; the KTP number is the human-facing
// identity and must be unique.
type Member struct {
	ID        uint      // Auto-assigned numeric identifier.
	NoKTP     string    // National identity card number, unique per member.
	Nama      string    // Full name.
	Alamat    string    // Home address.
	TglLahir  time.Time // Birth date; only the date component is meaningful.
	CreatedAt time.Time
	UpdatedAt time.Time
}
