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

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// List retrieves all books, newest first.
func (repo *bookRepository) List(ctx context.Context) ([]*entity.Book, error) {
	var bookMs []model.BookModel

	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&bookMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookMs))
	for i := range bookMs {
		books = append(books, toBookDomain(&bookMs[i]))
	}

	return books, nil
}

// FindByID retrieves a single book by its numeric ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uint) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).First(&bookM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindByIDForUpdate retrieves a book with a SELECT ... FOR UPDATE row lock.
// Only meaningful inside a transaction started by the transaction manager.
func (repo *bookRepository) FindByIDForUpdate(ctx context.Context, id uint) (*entity.Book, error) {
	var bookM model.BookModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&bookM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to lock book by id")
	}

	return toBookDomain(&bookM), nil
}

// Create persists a new book.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrNegativeStock
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// Update replaces an existing book's columns, stock included.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	result := repo.db.WithContext(ctx).Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"no_rak":       bookM.NoRak,
			"judul":        bookM.Judul,
			"pengarang":    bookM.Pengarang,
			"tahun_terbit": bookM.TahunTerbit,
			"penerbit":     bookM.Penerbit,
			"stok":         bookM.Stok,
			"detail":       bookM.Detail,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrNegativeStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// AdjustStock adds delta to the stock column in a single UPDATE. The CHECK
// constraint rejects adjustments that would go below zero.
func (repo *bookRepository) AdjustStock(ctx context.Context, id uint, delta int) error {
	result := repo.db.WithContext(ctx).Model(&model.BookModel{}).
		Where("id = ?", id).
		UpdateColumn("stok", gorm.Expr("stok + ?", delta))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrOutOfStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete removes a book permanently.
func (repo *bookRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func fromBookDomain(book *entity.Book) *model.BookModel {
	return &model.BookModel{
		ID:          book.ID,
		NoRak:       book.NoRak,
		Judul:       book.Judul,
		Pengarang:   book.Pengarang,
		TahunTerbit: book.TahunTerbit,
		Penerbit:    book.Penerbit,
		Stok:        book.Stok,
		Detail:      book.Detail,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}
}

func toBookDomain(bookM *model.BookModel) *entity.Book {
	return &entity.Book{
		ID:          bookM.ID,
		NoRak:       bookM.NoRak,
		Judul:       bookM.Judul,
		Pengarang:   bookM.Pengarang,
		TahunTerbit: bookM.TahunTerbit,
		Penerbit:    bookM.Penerbit,
		Stok:        bookM.Stok,
		Detail:      bookM.Detail,
		CreatedAt:   bookM.CreatedAt,
		UpdatedAt:   bookM.UpdatedAt,
	}
}
