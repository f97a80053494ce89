package entity

import "time"

// Book is a catalogue entry with a count of physical copies on the shelf.
// Stok is decremented when a loan is created and incremented when a book
// comes back in usable condition; it never goes below zero.
type Book struct {
	ID          uint
	NoRak       string // Shelf code.
	Judul       string // Title.
	Pengarang   string // Author.
	TahunTerbit int    // Publish year.
	Penerbit    string // Publisher.
	Stok        int    // Available copies, >= 0.
	Detail      string // Free-text description.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Available reports whether at least one copy can be lent out.
func (b *Book) Available() bool {
	return b.Stok > 0
}
