package impl

import (
	"context"
	"testing"
	"time"

	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	"perpus/internal/domain/repository"
	"perpus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoanService(fixture *txFixture) usecase.LoanUsecase {
	return NewLoanService(LoanServiceParams{
		TxManager:  fixture.manager,
		LoanRepo:   fixture.loans,
		MemberRepo: fixture.members,
		Logger:     testLogger(),
	})
}

func TestLoanService_Create_DecrementsStock(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()

	fixture.members.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.Member{ID: 3, Nama: "Budi Santoso"}, nil)

	fixture.books.EXPECT().
		FindByIDForUpdate(ctx, uint(7)).
		Return(&entity.Book{ID: 7, Judul: "Laskar Pelangi", Stok: 2}, nil)

	fixture.loans.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Loan")).
		Run(func(_ context.Context, loan *entity.Loan) {
			loan.ID = 11
		}).
		Return(nil)

	fixture.books.EXPECT().
		AdjustStock(ctx, uint(7), -1).
		Return(nil)

	record, err := service.Create(ctx, &usecase.LoanInput{
		IDMember:        3,
		IDBuku:          7,
		TglPinjam:       "2026-02-01",
		TglPengembalian: "2026-02-08",
	})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, uint(11), record.ID)
	assert.Equal(t, uint(3), record.IDMember)
	assert.Equal(t, uint(7), record.IDBuku)
	assert.Equal(t, "2026-02-01", record.TglPinjam)
	assert.Equal(t, "2026-02-08", record.TglPengembalian)
	assert.False(t, record.StatusPengembalian)
}

func TestLoanService_Create_OutOfStock(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()

	fixture.members.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.Member{ID: 3}, nil)

	fixture.books.EXPECT().
		FindByIDForUpdate(ctx, uint(7)).
		Return(&entity.Book{ID: 7, Stok: 0}, nil)

	record, err := service.Create(ctx, &usecase.LoanInput{
		IDMember:        3,
		IDBuku:          7,
		TglPinjam:       "2026-02-01",
		TglPengembalian: "2026-02-08",
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfStock)
}

func TestLoanService_Create_MemberNotFound(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()

	fixture.members.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrMemberNotFound)

	record, err := service.Create(ctx, &usecase.LoanInput{
		IDMember:        99,
		IDBuku:          7,
		TglPinjam:       "2026-02-01",
		TglPengembalian: "2026-02-08",
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}

func TestLoanService_Create_BookNotFound(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()

	fixture.members.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.Member{ID: 3}, nil)

	fixture.books.EXPECT().
		FindByIDForUpdate(ctx, uint(404)).
		Return(nil, repository.ErrBookNotFound)

	record, err := service.Create(ctx, &usecase.LoanInput{
		IDMember:        3,
		IDBuku:          404,
		TglPinjam:       "2026-02-01",
		TglPengembalian: "2026-02-08",
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestLoanService_Create_RejectsMalformedDate(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	record, err := service.Create(context.Background(), &usecase.LoanInput{
		IDMember:        3,
		IDBuku:          7,
		TglPinjam:       "01-02-2026",
		TglPengembalian: "2026-02-08",
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLoanService_MarkReturned(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()
	loan := &entity.Loan{
		ID:              5,
		IDMember:        3,
		IDBuku:          7,
		TglPinjam:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		TglPengembalian: time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
	}

	fixture.loans.EXPECT().
		FindByIDForUpdate(ctx, uint(5)).
		Return(loan, nil)

	fixture.loans.EXPECT().
		MarkReturned(ctx, uint(5)).
		Return(nil)

	record, err := service.MarkReturned(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.StatusPengembalian)
	assert.Equal(t, "2026-02-01", record.TglPinjam)
}

func TestLoanService_MarkReturned_AlreadyReturned(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()

	fixture.loans.EXPECT().
		FindByIDForUpdate(ctx, uint(5)).
		Return(&entity.Loan{ID: 5, StatusPengembalian: true}, nil)

	record, err := service.MarkReturned(ctx, 5)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrLoanAlreadyReturned)
}

func TestLoanService_MarkReturned_NotFound(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()

	fixture.loans.EXPECT().
		FindByIDForUpdate(ctx, uint(404)).
		Return(nil, repository.ErrLoanNotFound)

	record, err := service.MarkReturned(ctx, 404)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrLoanNotFound)
}

func TestLoanService_ListByMember_MemberNotFound(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()

	fixture.members.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrMemberNotFound)

	records, err := service.ListByMember(ctx, 99)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}

func TestLoanService_ListByMember(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()

	fixture.members.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.Member{ID: 3}, nil)

	fixture.loans.EXPECT().
		ListByMember(ctx, uint(3)).
		Return([]*entity.Loan{
			{ID: 2, IDMember: 3, IDBuku: 7, TglPinjam: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 1, IDMember: 3, IDBuku: 8, StatusPengembalian: true},
		}, nil)

	records, err := service.ListByMember(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint(2), records[0].ID)
	assert.Equal(t, "2026-02-01", records[0].TglPinjam)
	assert.True(t, records[1].StatusPengembalian)
}

func TestLoanService_List_RepositoryError(t *testing.T) {
	fixture := newTxFixture(t)
	service := newLoanService(fixture)

	ctx := context.Background()

	fixture.loans.EXPECT().
		List(ctx).
		Return(nil, errors.New("connection reset"))

	records, err := service.List(ctx)
	assert.Nil(t, records)
	assert.ErrorContains(t, err, "failed to list loans")
}
