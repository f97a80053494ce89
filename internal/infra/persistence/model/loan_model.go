package model

import "time"

// LoanModel is the GORM-specific struct for the 'loans' table.
// Member and book references are plain columns, not foreign keys: loans
// survive the hard delete of either side.
type LoanModel struct {
	ID                 uint `gorm:"primaryKey"`
	IDMember           uint `gorm:"column:id_member;not null;index"`
	IDBuku             uint `gorm:"column:id_buku;not null;index"`
	TglPinjam          time.Time
	TglPengembalian    time.Time
	StatusPengembalian bool `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoanModel) TableName() string {
	return "loans"
}
