package impl

import (
	"context"
	"testing"
	"time"

	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	mockRepo "perpus/internal/mocks/repository"
	"perpus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFineService_Create(t *testing.T) {
	fineRepo := mockRepo.NewMockFineRepository(t)
	service := NewFineService(fineRepo, testLogger())

	ctx := context.Background()

	fineRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Fine")).
		Run(func(_ context.Context, fine *entity.Fine) {
			fine.ID = 4
			fine.CreatedAt = time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
		}).
		Return(nil)

	record, err := service.Create(ctx, &usecase.FineInput{
		IDMember:    3,
		IDBuku:      7,
		JumlahDenda: 15000,
		JenisDenda:  "terlambat",
		Deskripsi:   "Terlambat 3 hari",
	})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, uint(4), record.ID)
	assert.Equal(t, int64(15000), record.JumlahDenda)
	assert.Equal(t, "terlambat", record.JenisDenda)
	assert.Equal(t, "2026-02-10T09:30:00Z", record.CreatedAt)
}

func TestFineService_Create_InvalidKind(t *testing.T) {
	fineRepo := mockRepo.NewMockFineRepository(t)
	service := NewFineService(fineRepo, testLogger())

	record, err := service.Create(context.Background(), &usecase.FineInput{
		IDMember:    3,
		IDBuku:      7,
		JumlahDenda: 15000,
		JenisDenda:  "hilang",
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFineKind)
}

func TestFineService_Create_NegativeAmount(t *testing.T) {
	fineRepo := mockRepo.NewMockFineRepository(t)
	service := NewFineService(fineRepo, testLogger())

	record, err := service.Create(context.Background(), &usecase.FineInput{
		IDMember:    3,
		IDBuku:      7,
		JumlahDenda: -500,
		JenisDenda:  "kerusakan",
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrNegativeFineAmount)
}

func TestFineService_List(t *testing.T) {
	fineRepo := mockRepo.NewMockFineRepository(t)
	service := NewFineService(fineRepo, testLogger())

	ctx := context.Background()

	fineRepo.EXPECT().
		List(ctx).
		Return([]*entity.Fine{
			{ID: 2, IDMember: 3, IDBuku: 7, JumlahDenda: 15000, JenisDenda: entity.FineKindTerlambat},
			{ID: 1, IDMember: 4, IDBuku: 8, JumlahDenda: 50000, JenisDenda: entity.FineKindKerusakan, Deskripsi: "Sampul robek"},
		}, nil)

	records, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "terlambat", records[0].JenisDenda)
	assert.Equal(t, "Sampul robek", records[1].Deskripsi)
	assert.Empty(t, records[0].CreatedAt)
}
