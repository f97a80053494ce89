package impl

import (
	"context"
	"log/slog"

	deliverycontext "perpus/internal/delivery/context"
	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	"perpus/internal/domain/repository"
	"perpus/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loanService implements the LoanUsecase interface.
type loanService struct {
	txManager  repository.TransactionManager
	loanRepo   repository.LoanRepository
	memberRepo repository.MemberRepository
	logger     *slog.Logger
}

// LoanServiceParams holds dependencies for loanService, injected by Fx.
type LoanServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	LoanRepo   repository.LoanRepository
	MemberRepo repository.MemberRepository
	Logger     *slog.Logger
}

// NewLoanService is the constructor for loanService.
func NewLoanService(params LoanServiceParams) usecase.LoanUsecase {
	return &loanService{
		txManager:  params.TxManager,
		loanRepo:   params.LoanRepo,
		memberRepo: params.MemberRepo,
		logger:     params.Logger,
	}
}

func (srv *loanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *loanService) List(ctx context.Context) ([]usecase.LoanRecord, error) {
	loans, err := srv.loanRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loans")
	}

	return toLoanRecords(loans), nil
}

func (srv *loanService) ListByMember(ctx context.Context, memberID uint) ([]usecase.LoanRecord, error) {
	if _, err := srv.memberRepo.FindByID(ctx, memberID); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	loans, err := srv.loanRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list member loans")
	}

	return toLoanRecords(loans), nil
}

// Create inserts a loan and decrements the book's stock in one transaction.
// The book row is locked first, so a concurrent session borrowing the last
// copy gets a stock-conflict error instead of driving stock negative.
func (srv *loanService) Create(ctx context.Context, input *usecase.LoanInput) (*usecase.LoanRecord, error) {
	tglPinjam, err := parseWireDate(input.TglPinjam)
	if err != nil {
		return nil, err
	}
	tglPengembalian, err := parseWireDate(input.TglPengembalian)
	if err != nil {
		return nil, err
	}

	loan := &entity.Loan{
		IDMember:        input.IDMember,
		IDBuku:          input.IDBuku,
		TglPinjam:       tglPinjam,
		TglPengembalian: tglPengembalian,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()
		bookRepo := repoFactory.NewBookRepository()
		loanRepo := repoFactory.NewLoanRepository()

		if _, err := memberRepo.FindByID(ctx, input.IDMember); err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return domainerrors.ErrMemberNotFound
			}

			return errors.Wrap(err, "failed to find member")
		}

		book, err := bookRepo.FindByIDForUpdate(ctx, input.IDBuku)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return errors.Wrap(err, "failed to lock book")
		}

		if !book.Available() {
			return domainerrors.ErrOutOfStock
		}

		if err := loanRepo.Create(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to create loan")
		}

		return bookRepo.AdjustStock(ctx, book.ID, -1)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Loan created",
		slog.Any("loanID", loan.ID),
		slog.Any("memberID", loan.IDMember),
		slog.Any("bookID", loan.IDBuku),
	)

	record := toLoanRecord(loan)

	return &record, nil
}

// MarkReturned flips the loan's returned flag. The loan row is locked so a
// double return is rejected rather than silently repeated.
func (srv *loanService) MarkReturned(ctx context.Context, id uint) (*usecase.LoanRecord, error) {
	var returned *entity.Loan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loanRepo := repoFactory.NewLoanRepository()

		loan, err := loanRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrLoanNotFound) {
				return domainerrors.ErrLoanNotFound
			}

			return errors.Wrap(err, "failed to lock loan")
		}

		if loan.Returned() {
			return domainerrors.ErrLoanAlreadyReturned
		}

		if err := loanRepo.MarkReturned(ctx, loan.ID); err != nil {
			return errors.Wrap(err, "failed to mark loan returned")
		}

		loan.StatusPengembalian = true
		returned = loan

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Loan returned", slog.Any("loanID", returned.ID))

	record := toLoanRecord(returned)

	return &record, nil
}

func toLoanRecord(loan *entity.Loan) usecase.LoanRecord {
	return usecase.LoanRecord{
		ID:                 loan.ID,
		IDMember:           loan.IDMember,
		IDBuku:             loan.IDBuku,
		TglPinjam:          formatWireDate(loan.TglPinjam),
		TglPengembalian:    formatWireDate(loan.TglPengembalian),
		StatusPengembalian: loan.StatusPengembalian,
	}
}

func toLoanRecords(loans []*entity.Loan) []usecase.LoanRecord {
	records := make([]usecase.LoanRecord, 0, len(loans))
	for _, loan := range loans {
		records = append(records, toLoanRecord(loan))
	}

	return records
}
