package repository

import (
	"context"
	"errors"

	"perpus/internal/domain/entity"
)

// ErrStaffNotFound is a domain-specific error returned when a staff account is not found.
var ErrStaffNotFound = errors.New("staff not found")

// StaffRepository defines the operations for librarian account persistence.
type StaffRepository interface {
	// FindByEmail retrieves a staff account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Staff, error)

	// Create persists a new staff account to the storage.
	Create(ctx context.Context, staff *entity.Staff) error
}
