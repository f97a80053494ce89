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
)

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo repository.BookRepository
	logger   *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(bookRepo repository.BookRepository, logger *slog.Logger) usecase.BookUsecase {
	return &bookService{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *bookService) List(ctx context.Context) ([]usecase.BookRecord, error) {
	books, err := srv.bookRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	records := make([]usecase.BookRecord, 0, len(books))
	for _, book := range books {
		records = append(records, toBookRecord(book))
	}

	return records, nil
}

func (srv *bookService) Create(ctx context.Context, input *usecase.BookInput) (*usecase.BookRecord, error) {
	if input.Stok < 0 {
		return nil, domainerrors.ErrNegativeStock
	}

	book := bookFromInput(input)
	if err := srv.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Book created", slog.Any("bookID", book.ID), slog.String("judul", book.Judul))

	record := toBookRecord(book)

	return &record, nil
}

// Update is a full replace of the book record, stock included. Submitting an
// unchanged record back is therefore idempotent.
func (srv *bookService) Update(ctx context.Context, id uint, input *usecase.BookInput) (*usecase.BookRecord, error) {
	if input.Stok < 0 {
		return nil, domainerrors.ErrNegativeStock
	}

	existing, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book")
	}

	updated := bookFromInput(input)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := srv.bookRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	record := toBookRecord(updated)

	return &record, nil
}

func (srv *bookService) Delete(ctx context.Context, id uint) error {
	if _, err := srv.bookRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return domainerrors.ErrBookNotFound
		}

		return errors.Wrap(err, "failed to find book")
	}

	srv.log(ctx).Info("Book deleted", slog.Any("bookID", id))

	return srv.bookRepo.Delete(ctx, id)
}

func bookFromInput(input *usecase.BookInput) *entity.Book {
	return &entity.Book{
		NoRak:       input.NoRak,
		Judul:       input.Judul,
		Pengarang:   input.Pengarang,
		TahunTerbit: input.TahunTerbit,
		Penerbit:    input.Penerbit,
		Stok:        input.Stok,
		Detail:      input.Detail,
	}
}

func toBookRecord(book *entity.Book) usecase.BookRecord {
	return usecase.BookRecord{
		ID:          book.ID,
		NoRak:       book.NoRak,
		Judul:       book.Judul,
		Pengarang:   book.Pengarang,
		TahunTerbit: book.TahunTerbit,
		Penerbit:    book.Penerbit,
		Stok:        book.Stok,
		Detail:      book.Detail,
	}
}
