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

// staffRepository implements the repository.StaffRepository interface.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{
		db: db,
	}
}

// FindByEmail retrieves a staff account by its login email.
func (repo *staffRepository) FindByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	var staffM model.StaffModel

	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&staffM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by email")
	}

	return toStaffDomain(&staffM), nil
}

// Create persists a new staff account.
func (repo *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	staffM := fromStaffDomain(staff)

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff")
	}

	staff.ID = staffM.ID
	staff.CreatedAt = staffM.CreatedAt
	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

func fromStaffDomain(staff *entity.Staff) *model.StaffModel {
	return &model.StaffModel{
		ID:        staff.ID,
		Name:      staff.Name,
		Email:     staff.Email,
		Password:  staff.Password,
		CreatedAt: staff.CreatedAt,
		UpdatedAt: staff.UpdatedAt,
	}
}

func toStaffDomain(staffM *model.StaffModel) *entity.Staff {
	return &entity.Staff{
		ID:        staffM.ID,
		Name:      staffM.Name,
		Email:     staffM.Email,
		Password:  staffM.Password,
		CreatedAt: staffM.CreatedAt,
		UpdatedAt: staffM.UpdatedAt,
	}
}
