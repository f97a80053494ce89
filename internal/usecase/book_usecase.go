package usecase

import "context"

// BookInput defines the data accepted when creating or updating a book.
// Updates are full replaces: submitting an unchanged record back is a no-op.
type BookInput struct {
	NoRak       string `json:"no_rak" validate:"required"`
	Judul       string `json:"judul" validate:"required"`
	Pengarang   string `json:"pengarang" validate:"required"`
	TahunTerbit int    `json:"tahun_terbit" validate:"required,gte=0"`
	Penerbit    string `json:"penerbit" validate:"required"`
	Stok        int    `json:"stok" validate:"gte=0"`
	Detail      string `json:"detail"`
}

// BookRecord is the wire representation of a book.
type BookRecord struct {
	ID          uint   `json:"id"`
	NoRak       string `json:"no_rak"`
	Judul       string `json:"judul"`
	Pengarang   string `json:"pengarang"`
	TahunTerbit int    `json:"tahun_terbit"`
	Penerbit    string `json:"penerbit"`
	Stok        int    `json:"stok"`
	Detail      string `json:"detail"`
}

// BookUsecase defines book management operations.
type BookUsecase interface {
	List(ctx context.Context) ([]BookRecord, error)
	Create(ctx context.Context, input *BookInput) (*BookRecord, error)
	Update(ctx context.Context, id uint, input *BookInput) (*BookRecord, error)
	Delete(ctx context.Context, id uint) error
}
