package model

import "time"

// FineModel is the GORM-specific struct for the 'fines' table.
type FineModel struct {
	ID          uint   `gorm:"primaryKey"`
	IDMember    uint   `gorm:"column:id_member;not null;index"`
	IDBuku      uint   `gorm:"column:id_buku;not null;index"`
	JumlahDenda int64  `gorm:"not null;check:jumlah_denda >= 0"`
	JenisDenda  string `gorm:"size:16;not null"`
	Deskripsi   string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FineModel) TableName() string {
	return "fines"
}
