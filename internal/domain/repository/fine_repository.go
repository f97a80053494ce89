package repository

import (
	"context"

	"perpus/internal/domain/entity"
)

// FineRepository defines the operations for fine persistence.
// Fines have no update or delete; they are created by the return workflow
// and read back for reporting.
type FineRepository interface {
	// List retrieves all fines ordered by newest first.
	List(ctx context.Context) ([]*entity.Fine, error)

	// Create persists a new fine entity to the storage.
	Create(ctx context.Context, fine *entity.Fine) error
}
