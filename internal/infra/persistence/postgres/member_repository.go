// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// List retrieves all members, newest first.
func (repo *memberRepository) List(ctx context.Context) ([]*entity.Member, error) {
	var memberMs []model.MemberModel

	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&memberMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	members := make([]*entity.Member, 0, len(memberMs))
	for i := range memberMs {
		members = append(members, toMemberDomain(&memberMs[i]))
	}

	return members, nil
}

// FindByID retrieves a single member by their numeric ID.
func (repo *memberRepository) FindByID(ctx context.Context, id uint) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).First(&memberM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by id")
	}

	return toMemberDomain(&memberM), nil
}

// Create persists a new member.
func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateKTP
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required member information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// Update replaces an existing member's columns.
func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	result := repo.db.WithContext(ctx).Model(&model.MemberModel{}).
		Where("id = ?", member.ID).
		Updates(map[string]any{
			"no_ktp":    memberM.NoKTP,
			"nama":      memberM.Nama,
			"alamat":    memberM.Alamat,
			"tgl_lahir": memberM.TglLahir,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateKTP
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// Delete removes a member permanently. Loans and fines keep their member ID.
func (repo *memberRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.MemberModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

func fromMemberDomain(member *entity.Member) *model.MemberModel {
	return &model.MemberModel{
		ID:        member.ID,
		NoKTP:     member.NoKTP,
		Nama:      member.Nama,
		Alamat:    member.Alamat,
		TglLahir:  member.TglLahir,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}

func toMemberDomain(memberM *model.MemberModel) *entity.Member {
	return &entity.Member{
		ID:        memberM.ID,
		NoKTP:     memberM.NoKTP,
		Nama:      memberM.Nama,
		Alamat:    memberM.Alamat,
		TglLahir:  memberM.TglLahir,
		CreatedAt: memberM.CreatedAt,
		UpdatedAt: memberM.UpdatedAt,
	}
}
