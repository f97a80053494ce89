// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"perpus/internal/domain/entity"
)

// ErrMemberNotFound is a domain-specific error returned when a member is not found.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository defines the standard operations for member persistence.
// The application layer depends on this interface, not the concrete implementation.
type MemberRepository interface {
	// List retrieves all members ordered by newest first.
	List(ctx context.Context) ([]*entity.Member, error)

	// FindByID retrieves a single member by their numeric ID.
	FindByID(ctx context.Context, id uint) (*entity.Member, error)

	// Create persists a new member entity to the storage.
	Create(ctx context.Context, member *entity.Member) error

	// Update modifies an existing member entity in the storage.
	Update(ctx context.Context, member *entity.Member) error

	// Delete removes a member permanently. Loans and fines keep their
	// member ID as a dangling reference; no cascade is performed.
	Delete(ctx context.Context, id uint) error
}
