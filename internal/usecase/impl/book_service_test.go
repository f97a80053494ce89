package impl

import (
	"context"
	"testing"

	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	"perpus/internal/domain/repository"
	mockRepo "perpus/internal/mocks/repository"
	"perpus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookService_Create(t *testing.T) {
	bookRepo := mockRepo.NewMockBookRepository(t)
	service := NewBookService(bookRepo, testLogger())

	ctx := context.Background()

	bookRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(_ context.Context, book *entity.Book) {
			book.ID = 7
		}).
		Return(nil)

	record, err := service.Create(ctx, &usecase.BookInput{
		NoRak:       "A-12",
		Judul:       "Laskar Pelangi",
		Pengarang:   "Andrea Hirata",
		TahunTerbit: 2005,
		Penerbit:    "Bentang Pustaka",
		Stok:        3,
		Detail:      "Cetakan ke-40",
	})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, uint(7), record.ID)
	assert.Equal(t, "Laskar Pelangi", record.Judul)
	assert.Equal(t, 3, record.Stok)
}

func TestBookService_Create_NegativeStock(t *testing.T) {
	bookRepo := mockRepo.NewMockBookRepository(t)
	service := NewBookService(bookRepo, testLogger())

	record, err := service.Create(context.Background(), &usecase.BookInput{
		NoRak:     "A-12",
		Judul:     "Laskar Pelangi",
		Pengarang: "Andrea Hirata",
		Penerbit:  "Bentang Pustaka",
		Stok:      -1,
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrNegativeStock)
}

func TestBookService_Update_FullReplace(t *testing.T) {
	bookRepo := mockRepo.NewMockBookRepository(t)
	service := NewBookService(bookRepo, testLogger())

	ctx := context.Background()

	bookRepo.EXPECT().
		FindByID(ctx, uint(7)).
		Return(&entity.Book{ID: 7, Judul: "Laskar Pelangi", Stok: 3}, nil)

	bookRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(book *entity.Book) bool {
			return book.ID == 7 && book.Stok == 4
		})).
		Return(nil)

	record, err := service.Update(ctx, 7, &usecase.BookInput{
		NoRak:       "A-12",
		Judul:       "Laskar Pelangi",
		Pengarang:   "Andrea Hirata",
		TahunTerbit: 2005,
		Penerbit:    "Bentang Pustaka",
		Stok:        4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, record.Stok)
}

func TestBookService_Update_NotFound(t *testing.T) {
	bookRepo := mockRepo.NewMockBookRepository(t)
	service := NewBookService(bookRepo, testLogger())

	ctx := context.Background()

	bookRepo.EXPECT().
		FindByID(ctx, uint(404)).
		Return(nil, repository.ErrBookNotFound)

	record, err := service.Update(ctx, 404, &usecase.BookInput{
		NoRak:     "A-12",
		Judul:     "Laskar Pelangi",
		Pengarang: "Andrea Hirata",
		Penerbit:  "Bentang Pustaka",
		Stok:      1,
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestBookService_Delete_NotFound(t *testing.T) {
	bookRepo := mockRepo.NewMockBookRepository(t)
	service := NewBookService(bookRepo, testLogger())

	ctx := context.Background()

	bookRepo.EXPECT().
		FindByID(ctx, uint(404)).
		Return(nil, repository.ErrBookNotFound)

	err := service.Delete(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestBookService_List(t *testing.T) {
	bookRepo := mockRepo.NewMockBookRepository(t)
	service := NewBookService(bookRepo, testLogger())

	ctx := context.Background()

	bookRepo.EXPECT().
		List(ctx).
		Return([]*entity.Book{
			{ID: 8, Judul: "Bumi Manusia", Stok: 0},
			{ID: 7, Judul: "Laskar Pelangi", Stok: 3},
		}, nil)

	records, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Bumi Manusia", records[0].Judul)
	assert.Equal(t, 0, records[0].Stok)
}
