package model

import "time"

// BookModel is the GORM-specific struct for the 'books' table.
// The CHECK constraint backs up the application-level stock invariant.
type BookModel struct {
	ID          uint   `gorm:"primaryKey"`
	NoRak       string `gorm:"column:no_rak;size:32;not null"`
	Judul       string `gorm:"size:255;not null"`
	Pengarang   string `gorm:"size:255;not null"`
	TahunTerbit int    `gorm:"not null"`
	Penerbit    string `gorm:"size:255;not null"`
	Stok        int    `gorm:"not null;default:0;check:stok >= 0"`
	Detail      string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
