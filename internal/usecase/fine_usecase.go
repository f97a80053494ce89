package usecase

import "context"

// FineInput defines the data accepted when recording a fine.
type FineInput struct {
	IDMember    uint   `json:"id_member" validate:"required"`
	IDBuku      uint   `json:"id_buku" validate:"required"`
	JumlahDenda int64  `json:"jumlah_denda" validate:"gte=0"`
	JenisDenda  string `json:"jenis_denda" validate:"required"`
	Deskripsi   string `json:"deskripsi"`
}

// FineRecord is the wire representation of a fine.
type FineRecord struct {
	ID          uint   `json:"id"`
	IDMember    uint   `json:"id_member"`
	IDBuku      uint   `json:"id_buku"`
	JumlahDenda int64  `json:"jumlah_denda"`
	JenisDenda  string `json:"jenis_denda"`
	Deskripsi   string `json:"deskripsi"`
	CreatedAt   string `json:"created_at"`
}

// FineUsecase defines fine operations. Fines are created by the return
// workflow and listed for reporting; there is no update or delete.
type FineUsecase interface {
	List(ctx context.Context) ([]FineRecord, error)
	Create(ctx context.Context, input *FineInput) (*FineRecord, error)
}
