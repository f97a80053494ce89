package usecase

import "context"

// LoanInput defines the data accepted when creating a loan.
type LoanInput struct {
	IDMember        uint   `json:"id_member" validate:"required"`
	IDBuku          uint   `json:"id_buku" validate:"required"`
	TglPinjam       string `json:"tgl_pinjam" validate:"required,datetime=2006-01-02"`
	TglPengembalian string `json:"tgl_pengembalian" validate:"required,datetime=2006-01-02"`
}

// LoanRecord is the wire representation of a loan.
type LoanRecord struct {
	ID                 uint   `json:"id"`
	IDMember           uint   `json:"id_member"`
	IDBuku             uint   `json:"id_buku"`
	TglPinjam          string `json:"tgl_pinjam"`
	TglPengembalian    string `json:"tgl_pengembalian"`
	StatusPengembalian bool   `json:"status_pengembalian"`
}

// LoanUsecase defines loan operations.
//
// Create runs as one database transaction: the book row is locked, stock is
// checked and decremented, and the loan is inserted, so two staff sessions
// cannot both borrow the last copy. MarkReturned only flips the terminal
// returned flag; restoring stock on return is the admin client's
// responsibility.
type LoanUsecase interface {
	List(ctx context.Context) ([]LoanRecord, error)
	ListByMember(ctx context.Context, memberID uint) ([]LoanRecord, error)
	Create(ctx context.Context, input *LoanInput) (*LoanRecord, error)
	MarkReturned(ctx context.Context, id uint) (*LoanRecord, error)
}
