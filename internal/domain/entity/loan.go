package entity

import "time"

// Loan records one member borrowing one book. Member and book are weak
// references by ID; deleting either does not cascade to the loan.
// Once StatusPengembalian is true the loan is terminal and must not be
// mutated again.
type Loan struct {
	ID                 uint
	IDMember           uint
	IDBuku             uint
	TglPinjam          time.Time // Borrow date.
	TglPengembalian    time.Time // Due / return date.
	StatusPengembalian bool      // True once the book has been returned.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Returned reports whether the loan has reached its terminal state.
func (l *Loan) Returned() bool {
	return l.StatusPengembalian
}
