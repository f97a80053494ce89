package postgres

import (
	"context"

	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	"perpus/internal/domain/repository"
	"perpus/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loanRepository implements the repository.LoanRepository interface.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository is the constructor for loanRepository.
func NewLoanRepository(db *gorm.DB) repository.LoanRepository {
	return &loanRepository{
		db: db,
	}
}

// List retrieves all loans, newest first.
func (repo *loanRepository) List(ctx context.Context) ([]*entity.Loan, error) {
	var loanMs []model.LoanModel

	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&loanMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list loans")
	}

	return toLoanDomains(loanMs), nil
}

// ListByMember retrieves one member's loan history, newest first.
func (repo *loanRepository) ListByMember(ctx context.Context, memberID uint) ([]*entity.Loan, error) {
	var loanMs []model.LoanModel

	err := repo.db.WithContext(ctx).
		Where("id_member = ?", memberID).
		Order("id DESC").
		Find(&loanMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list member loans")
	}

	return toLoanDomains(loanMs), nil
}

// FindByID retrieves a single loan by its numeric ID.
func (repo *loanRepository) FindByID(ctx context.Context, id uint) (*entity.Loan, error) {
	var loanM model.LoanModel

	if err := repo.db.WithContext(ctx).First(&loanM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan by id")
	}

	return toLoanDomain(&loanM), nil
}

// FindByIDForUpdate retrieves a loan with a SELECT ... FOR UPDATE row lock.
func (repo *loanRepository) FindByIDForUpdate(ctx context.Context, id uint) (*entity.Loan, error) {
	var loanM model.LoanModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&loanM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to lock loan by id")
	}

	return toLoanDomain(&loanM), nil
}

// Create persists a new loan.
func (repo *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)

	if err := repo.db.WithContext(ctx).Create(loanM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required loan information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loan")
	}

	loan.ID = loanM.ID
	loan.CreatedAt = loanM.CreatedAt
	loan.UpdatedAt = loanM.UpdatedAt

	return nil
}

// MarkReturned flips the terminal returned flag.
func (repo *loanRepository) MarkReturned(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Model(&model.LoanModel{}).
		Where("id = ?", id).
		Update("status_pengembalian", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark loan returned")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoanNotFound
	}

	return nil
}

func fromLoanDomain(loan *entity.Loan) *model.LoanModel {
	return &model.LoanModel{
		ID:                 loan.ID,
		IDMember:           loan.IDMember,
		IDBuku:             loan.IDBuku,
		TglPinjam:          loan.TglPinjam,
		TglPengembalian:    loan.TglPengembalian,
		StatusPengembalian: loan.StatusPengembalian,
		CreatedAt:          loan.CreatedAt,
		UpdatedAt:          loan.UpdatedAt,
	}
}

func toLoanDomain(loanM *model.LoanModel) *entity.Loan {
	return &entity.Loan{
		ID:                 loanM.ID,
		IDMember:           loanM.IDMember,
		IDBuku:             loanM.IDBuku,
		TglPinjam:          loanM.TglPinjam,
		TglPengembalian:    loanM.TglPengembalian,
		StatusPengembalian: loanM.StatusPengembalian,
		CreatedAt:          loanM.CreatedAt,
		UpdatedAt:          loanM.UpdatedAt,
	}
}

func toLoanDomains(loanMs []model.LoanModel) []*entity.Loan {
	loans := make([]*entity.Loan, 0, len(loanMs))
	for i := range loanMs {
		loans = append(loans, toLoanDomain(&loanMs[i]))
	}

	return loans
}
