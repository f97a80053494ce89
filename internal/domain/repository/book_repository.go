package repository

import (
	"context"
	"errors"

	"perpus/internal/domain/entity"
)

// ErrBookNotFound is a domain-specific error returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	// List retrieves all books ordered by newest first.
	List(ctx context.Context) ([]*entity.Book, error)

	// FindByID retrieves a single book by its numeric ID.
	FindByID(ctx context.Context, id uint) (*entity.Book, error)

	// FindByIDForUpdate retrieves a book and locks its row for the duration
	// of the surrounding transaction. Used by the loan workflow so two
	// concurrent staff sessions cannot both take the last copy.
	FindByIDForUpdate(ctx context.Context, id uint) (*entity.Book, error)

	// Create persists a new book entity to the storage.
	Create(ctx context.Context, book *entity.Book) error

	// Update modifies an existing book entity in the storage.
	Update(ctx context.Context, book *entity.Book) error

	// AdjustStock adds delta (possibly negative) to the book's stock.
	// The storage rejects any adjustment that would drive stock below zero.
	AdjustStock(ctx context.Context, id uint, delta int) error

	// Delete removes a book permanently.
	Delete(ctx context.Context, id uint) error
}
