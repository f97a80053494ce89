package postgres

import (
	"context"

	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	"perpus/internal/domain/repository"
	"perpus/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// fineRepository implements the repository.FineRepository interface.
type fineRepository struct {
	db *gorm.DB
}

// NewFineRepository is the constructor for fineRepository.
func NewFineRepository(db *gorm.DB) repository.FineRepository {
	return &fineRepository{
		db: db,
	}
}

// List retrieves all fines, newest first.
func (repo *fineRepository) List(ctx context.Context) ([]*entity.Fine, error) {
	var fineMs []model.FineModel

	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&fineMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list fines")
	}

	fines := make([]*entity.Fine, 0, len(fineMs))
	for i := range fineMs {
		fines = append(fines, toFineDomain(&fineMs[i]))
	}

	return fines, nil
}

// Create persists a new fine.
func (repo *fineRepository) Create(ctx context.Context, fine *entity.Fine) error {
	fineM := fromFineDomain(fine)

	if err := repo.db.WithContext(ctx).Create(fineM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrNegativeFineAmount
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create fine")
	}

	fine.ID = fineM.ID
	fine.CreatedAt = fineM.CreatedAt

	return nil
}

func fromFineDomain(fine *entity.Fine) *model.FineModel {
	return &model.FineModel{
		ID:          fine.ID,
		IDMember:    fine.IDMember,
		IDBuku:      fine.IDBuku,
		JumlahDenda: fine.JumlahDenda,
		JenisDenda:  string(fine.JenisDenda),
		Deskripsi:   fine.Deskripsi,
		CreatedAt:   fine.CreatedAt,
	}
}

func toFineDomain(fineM *model.FineModel) *entity.Fine {
	return &entity.Fine{
		ID:          fineM.ID,
		IDMember:    fineM.IDMember,
		IDBuku:      fineM.IDBuku,
		JumlahDenda: fineM.JumlahDenda,
		JenisDenda:  entity.FineKind(fineM.JenisDenda),
		Deskripsi:   fineM.Deskripsi,
		CreatedAt:   fineM.CreatedAt,
	}
}
