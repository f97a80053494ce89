package client

import (
	"context"

	"perpus/internal/usecase"

	"github.com/pkg/errors"
)

// Messages shown by client-side pre-checks and the compound return flow.
const (
	MsgBookNotFound   = "Buku tidak ditemukan."
	MsgOutOfStock     = "Stok buku tidak tersedia."
	MsgReturnFailed   = "Gagal mengembalikan buku."
	FineKindKerusakan = "kerusakan"
)

// ValidationError is a business failure detected before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MutationCoordinator executes create/update/delete round-trips for one
// resource and keeps its store and modal in sync: success sets a
// transient alert, reloads the store and closes the modal; failure keeps
// the modal open with the server's message; 401 routes to the session's
// unauthorized handler.
type MutationCoordinator[T any, B any] struct {
	store   *ResourceStore[T]
	modal   *ModalSession[B]
	session *Session
}

// NewMutationCoordinator ties a store, its modal and the session together.
func NewMutationCoordinator[T any, B any](store *ResourceStore[T], modal *ModalSession[B], session *Session) *MutationCoordinator[T, B] {
	return &MutationCoordinator[T, B]{
		store:   store,
		modal:   modal,
		session: session,
	}
}

// Submit runs a modal-bound mutation (create or update).
func (m *MutationCoordinator[T, B]) Submit(ctx context.Context, op func(ctx context.Context) error, successMsg string) error {
	if !m.modal.beginSubmit() {
		return errors.New("no active modal")
	}

	if err := op(ctx); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			m.modal.failSubmit()
			m.session.HandleUnauthorized()

			return err
		}

		m.modal.failSubmit()
		m.store.SetError(userMessage(err))

		return err
	}

	m.store.SetAlert(successMsg)
	_ = m.store.Load(ctx)
	m.modal.completeSubmit()

	return nil
}

// Mutate runs a mutation with no modal involved (e.g. row delete).
func (m *MutationCoordinator[T, B]) Mutate(ctx context.Context, op func(ctx context.Context) error, successMsg string) error {
	if err := op(ctx); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			m.session.HandleUnauthorized()

			return err
		}

		m.store.SetError(userMessage(err))

		return err
	}

	m.store.SetAlert(successMsg)
	_ = m.store.Load(ctx)

	return nil
}

// FineDraft is the optional fine sub-form on the return dialog. A fine
// is recorded when the amount is positive.
type FineDraft struct {
	JumlahDenda int64
	JenisDenda  string
	Deskripsi   string
}

// Recorded reports whether the draft results in a fine record.
func (d *FineDraft) Recorded() bool {
	return d != nil && d.JumlahDenda > 0
}

// LoanWorkflow drives loan creation and the compound return operation
// against the loan and book stores.
type LoanWorkflow struct {
	api     *APIClient
	loans   *ResourceStore[usecase.LoanRecord]
	books   *ResourceStore[usecase.BookRecord]
	session *Session
}

// NewLoanWorkflow creates the workflow over the given stores.
func NewLoanWorkflow(api *APIClient, loans *ResourceStore[usecase.LoanRecord], books *ResourceStore[usecase.BookRecord], session *Session) *LoanWorkflow {
	return &LoanWorkflow{
		api:     api,
		loans:   loans,
		books:   books,
		session: session,
	}
}

// Borrow creates a loan. The selected book is validated against the
// already-loaded book list before any network call; the server still
// checks and decrements stock atomically, and a stock conflict from the
// server surfaces with its own message rather than a generic failure.
func (w *LoanWorkflow) Borrow(ctx context.Context, input *usecase.LoanInput) (*usecase.LoanRecord, error) {
	book, ok := w.books.Find(func(b usecase.BookRecord) bool { return b.ID == input.IDBuku })
	if !ok {
		return nil, &ValidationError{Message: MsgBookNotFound}
	}
	if book.Stok <= 0 {
		return nil, &ValidationError{Message: MsgOutOfStock}
	}

	record, err := w.api.CreateLoan(ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			w.session.HandleUnauthorized()

			return nil, err
		}

		w.loans.SetError(userMessage(err))

		return nil, err
	}

	w.loans.SetAlert("Peminjaman berhasil ditambahkan")
	_ = w.loans.Load(ctx)
	_ = w.books.Load(ctx)

	return record, nil
}

// Return runs the compound return operation in its fixed order:
//
//  1. record the fine first, when one is recorded;
//  2. restore stock via a full book replace, unless the fine category
//     is kerusakan (a damaged book leaves circulation);
//  3. only then flip the loan's returned flag;
//  4. refresh the loan and book stores.
//
// Any step failing surfaces as the single generic failure message.
// Completed steps are not rolled back.
func (w *LoanWorkflow) Return(ctx context.Context, loan *usecase.LoanRecord, fine *FineDraft) error {
	if fine.Recorded() {
		fineInput := &usecase.FineInput{
			IDMember:    loan.IDMember,
			IDBuku:      loan.IDBuku,
			JumlahDenda: fine.JumlahDenda,
			JenisDenda:  fine.JenisDenda,
			Deskripsi:   fine.Deskripsi,
		}
		if _, err := w.api.CreateFine(ctx, fineInput); err != nil {
			return w.returnFailed(err)
		}
	}

	if !fine.Recorded() || fine.JenisDenda != FineKindKerusakan {
		if err := w.restoreStock(ctx, loan.IDBuku); err != nil {
			return w.returnFailed(err)
		}
	}

	if _, err := w.api.MarkReturned(ctx, loan.ID); err != nil {
		return w.returnFailed(err)
	}

	w.loans.SetAlert("Buku berhasil dikembalikan")
	_ = w.loans.Load(ctx)
	_ = w.books.Load(ctx)

	return nil
}

// restoreStock increments the book's stock by one via an idempotent-edit
// full replace of the current record.
func (w *LoanWorkflow) restoreStock(ctx context.Context, bookID uint) error {
	book, ok := w.books.Find(func(b usecase.BookRecord) bool { return b.ID == bookID })
	if !ok {
		return &ValidationError{Message: MsgBookNotFound}
	}

	input := &usecase.BookInput{
		NoRak:       book.NoRak,
		Judul:       book.Judul,
		Pengarang:   book.Pengarang,
		TahunTerbit: book.TahunTerbit,
		Penerbit:    book.Penerbit,
		Stok:        book.Stok + 1,
		Detail:      book.Detail,
	}

	_, err := w.api.UpdateBook(ctx, bookID, input)

	return err
}

func (w *LoanWorkflow) returnFailed(err error) error {
	if errors.Is(err, ErrUnauthorized) {
		w.session.HandleUnauthorized()

		return err
	}

	w.loans.SetError(MsgReturnFailed)

	return errors.Wrap(err, MsgReturnFailed)
}
