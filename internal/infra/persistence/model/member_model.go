// Package model contains the GORM-specific persistence structs.
package model

import "time"

// MemberModel is the GORM-specific struct for the 'members' table.
type MemberModel struct {
	ID        uint   `gorm:"primaryKey"`
	NoKTP     string `gorm:"column:no_ktp;size:32;not null;uniqueIndex"`
	Nama      string `gorm:"size:255;not null"`
	Alamat    string `gorm:"type:text;not null"`
	TglLahir  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
