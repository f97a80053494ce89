package repository

import (
	"context"
	"errors"

	"perpus/internal/domain/entity"
)

// ErrLoanNotFound is a domain-specific error returned when a loan is not found.
var ErrLoanNotFound = errors.New("loan not found")

// LoanRepository defines the standard operations for loan persistence.
type LoanRepository interface {
	// List retrieves all loans ordered by newest first.
	List(ctx context.Context) ([]*entity.Loan, error)

	// ListByMember retrieves the loan history of a single member.
	ListByMember(ctx context.Context, memberID uint) ([]*entity.Loan, error)

	// FindByID retrieves a single loan by its numeric ID.
	FindByID(ctx context.Context, id uint) (*entity.Loan, error)

	// FindByIDForUpdate retrieves a loan and locks its row for the duration
	// of the surrounding transaction, guarding against a double return.
	FindByIDForUpdate(ctx context.Context, id uint) (*entity.Loan, error)

	// Create persists a new loan entity to the storage.
	Create(ctx context.Context, loan *entity.Loan) error

	// MarkReturned flips the loan's returned flag. The flag is terminal;
	// callers must reject loans that are already returned.
	MarkReturned(ctx context.Context, id uint) error
}
