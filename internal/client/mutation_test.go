package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpus/internal/usecase"
)

// fakeLibrary is an in-memory stand-in for the library service that
// records every request it receives, in order.
type fakeLibrary struct {
	mu       sync.Mutex
	requests []string // "METHOD path"
	members  []usecase.MemberRecord
	books    []usecase.BookRecord
	loans    []usecase.LoanRecord
	failPath string // requests to this path fail with a 500
}

func (f *fakeLibrary) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
}

func (f *fakeLibrary) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.requests))
	copy(out, f.requests)

	return out
}

func (f *fakeLibrary) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/member", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			respond(w, http.StatusOK, f.members)
		case http.MethodPost:
			var input usecase.MemberInput
			_ = json.NewDecoder(r.Body).Decode(&input)
			record := usecase.MemberRecord{
				ID:       uint(len(f.members) + 1),
				NoKTP:    input.NoKTP,
				Nama:     input.Nama,
				Alamat:   input.Alamat,
				TglLahir: input.TglLahir,
			}
			f.members = append(f.members, record)
			respond(w, http.StatusCreated, record)
		}
	})
	mux.HandleFunc("/buku", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, f.books)
	})
	mux.HandleFunc("/buku/", func(w http.ResponseWriter, r *http.Request) {
		var input usecase.BookInput
		_ = json.NewDecoder(r.Body).Decode(&input)
		for i := range f.books {
			f.books[i].Stok = input.Stok
		}
		respond(w, http.StatusOK, f.books[0])
	})
	mux.HandleFunc("/peminjaman", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			respond(w, http.StatusOK, f.loans)
		case http.MethodPost:
			var input usecase.LoanInput
			_ = json.NewDecoder(r.Body).Decode(&input)
			record := usecase.LoanRecord{
				ID:              uint(len(f.loans) + 1),
				IDMember:        input.IDMember,
				IDBuku:          input.IDBuku,
				TglPinjam:       input.TglPinjam,
				TglPengembalian: input.TglPengembalian,
			}
			f.loans = append(f.loans, record)
			respond(w, http.StatusCreated, record)
		}
	})
	mux.HandleFunc("/peminjaman/pengembalian/", func(w http.ResponseWriter, r *http.Request) {
		for i := range f.loans {
			f.loans[i].StatusPengembalian = true
		}
		respond(w, http.StatusOK, f.loans[0])
	})
	mux.HandleFunc("/denda", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusCreated, usecase.FineRecord{ID: 1})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.failPath != "" && r.URL.Path == f.failPath {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "boom")

			return
		}
		mux.ServeHTTP(w, r)
	})
}

func newWorkflowFixture(t *testing.T, fake *fakeLibrary) (*LoanWorkflow, *ResourceStore[usecase.LoanRecord], *ResourceStore[usecase.BookRecord]) {
	t.Helper()

	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	session := newTestSession(t)
	api := NewAPIClient(server.URL, session)

	loans := NewResourceStore(api.ListLoans, session.HandleUnauthorized)
	books := NewResourceStore(api.ListBooks, session.HandleUnauthorized)
	require.NoError(t, books.Load(context.Background()))

	return NewLoanWorkflow(api, loans, books, session), loans, books
}

func TestLoanWorkflow_Borrow_ZeroStockShortCircuits(t *testing.T) {
	fake := &fakeLibrary{books: []usecase.BookRecord{{ID: 7, Judul: "Laskar Pelangi", Stok: 0}}}
	workflow, _, _ := newWorkflowFixture(t, fake)

	before := len(fake.Requests())

	_, err := workflow.Borrow(context.Background(), &usecase.LoanInput{
		IDMember:        1,
		IDBuku:          7,
		TglPinjam:       "2026-08-01",
		TglPengembalian: "2026-08-08",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgOutOfStock, vErr.Message)
	assert.Len(t, fake.Requests(), before, "zero-stock pre-check must not call the API")
}

func TestLoanWorkflow_Borrow_UnknownBookShortCircuits(t *testing.T) {
	fake := &fakeLibrary{books: []usecase.BookRecord{{ID: 7, Stok: 3}}}
	workflow, _, _ := newWorkflowFixture(t, fake)

	before := len(fake.Requests())

	_, err := workflow.Borrow(context.Background(), &usecase.LoanInput{IDMember: 1, IDBuku: 99})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgBookNotFound, vErr.Message)
	assert.Len(t, fake.Requests(), before)
}

func TestLoanWorkflow_Borrow_SingleCreateCall(t *testing.T) {
	fake := &fakeLibrary{books: []usecase.BookRecord{{ID: 7, Stok: 3}}}
	workflow, loans, _ := newWorkflowFixture(t, fake)

	record, err := workflow.Borrow(context.Background(), &usecase.LoanInput{
		IDMember:        1,
		IDBuku:          7,
		TglPinjam:       "2026-08-01",
		TglPengembalian: "2026-08-08",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), record.IDBuku)

	// Stock is decremented server-side inside the loan transaction; the
	// client issues no separate stock write on creation.
	assert.Contains(t, fake.Requests(), "POST /peminjaman")
	for _, req := range fake.Requests() {
		assert.NotEqual(t, "PUT /buku/7", req)
	}
	assert.Equal(t, "Peminjaman berhasil ditambahkan", loans.Alert())
}

func TestLoanWorkflow_Return_NoFine_RestoresStock(t *testing.T) {
	fake := &fakeLibrary{
		books: []usecase.BookRecord{{ID: 7, Judul: "Laskar Pelangi", Stok: 2}},
		loans: []usecase.LoanRecord{{ID: 1, IDMember: 1, IDBuku: 7}},
	}
	workflow, _, books := newWorkflowFixture(t, fake)

	loan := fake.loans[0]
	require.NoError(t, workflow.Return(context.Background(), &loan, nil))

	requests := fake.Requests()
	assert.NotContains(t, requests, "POST /denda")

	putIdx := indexOf(requests, "PUT /buku/7")
	returnIdx := indexOf(requests, "PUT /peminjaman/pengembalian/1")
	require.GreaterOrEqual(t, putIdx, 0, "stock must be restored")
	require.GreaterOrEqual(t, returnIdx, 0)
	assert.Less(t, putIdx, returnIdx, "stock adjustment must precede the returned flag")

	book, ok := books.Find(func(b usecase.BookRecord) bool { return b.ID == 7 })
	require.True(t, ok)
	assert.Equal(t, 3, book.Stok, "stock after = stock before + 1")
}

func TestLoanWorkflow_Return_DamageFine_LeavesStock(t *testing.T) {
	fake := &fakeLibrary{
		books: []usecase.BookRecord{{ID: 7, Stok: 2}},
		loans: []usecase.LoanRecord{{ID: 1, IDMember: 1, IDBuku: 7}},
	}
	workflow, _, books := newWorkflowFixture(t, fake)

	loan := fake.loans[0]
	fine := &FineDraft{JumlahDenda: 50000, JenisDenda: FineKindKerusakan, Deskripsi: "halaman sobek"}
	require.NoError(t, workflow.Return(context.Background(), &loan, fine))

	requests := fake.Requests()
	fineIdx := indexOf(requests, "POST /denda")
	returnIdx := indexOf(requests, "PUT /peminjaman/pengembalian/1")
	require.GreaterOrEqual(t, fineIdx, 0, "fine must be recorded")
	require.GreaterOrEqual(t, returnIdx, 0)
	assert.Less(t, fineIdx, returnIdx, "fine must be recorded before the returned flag")
	assert.Equal(t, -1, indexOf(requests, "PUT /buku/7"), "damaged book must not restore stock")

	book, ok := books.Find(func(b usecase.BookRecord) bool { return b.ID == 7 })
	require.True(t, ok)
	assert.Equal(t, 2, book.Stok, "stock unchanged on damage")
}

func TestLoanWorkflow_Return_LateFine_RestoresStock(t *testing.T) {
	fake := &fakeLibrary{
		books: []usecase.BookRecord{{ID: 7, Stok: 2}},
		loans: []usecase.LoanRecord{{ID: 1, IDMember: 1, IDBuku: 7}},
	}
	workflow, _, books := newWorkflowFixture(t, fake)

	loan := fake.loans[0]
	fine := &FineDraft{JumlahDenda: 10000, JenisDenda: "terlambat"}
	require.NoError(t, workflow.Return(context.Background(), &loan, fine))

	requests := fake.Requests()
	assert.GreaterOrEqual(t, indexOf(requests, "POST /denda"), 0)
	assert.GreaterOrEqual(t, indexOf(requests, "PUT /buku/7"), 0)

	book, ok := books.Find(func(b usecase.BookRecord) bool { return b.ID == 7 })
	require.True(t, ok)
	assert.Equal(t, 3, book.Stok, "non-damage fine still restores stock")
}

func TestLoanWorkflow_Return_StepFailureIsGeneric(t *testing.T) {
	fake := &fakeLibrary{
		books:    []usecase.BookRecord{{ID: 7, Stok: 2}},
		loans:    []usecase.LoanRecord{{ID: 1, IDMember: 1, IDBuku: 7}},
		failPath: "/peminjaman/pengembalian/1",
	}
	workflow, loans, _ := newWorkflowFixture(t, fake)

	loan := fake.loans[0]
	err := workflow.Return(context.Background(), &loan, nil)
	require.Error(t, err)

	// The stock write before the failing step is not rolled back.
	assert.GreaterOrEqual(t, indexOf(fake.Requests(), "PUT /buku/7"), 0)
	assert.Equal(t, MsgReturnFailed, loans.ErrorMessage())
}

func TestMutationCoordinator_MemberCreate_RefetchContainsNoKTPOnce(t *testing.T) {
	fake := &fakeLibrary{}
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	session := newTestSession(t)
	api := NewAPIClient(server.URL, session)

	store := NewResourceStore(api.ListMembers, session.HandleUnauthorized)
	modal := NewModalSession(usecase.MemberInput{}, nil)
	coordinator := NewMutationCoordinator(store, modal, session)

	modal.Open(ModeCreate, usecase.MemberInput{})
	modal.SetBuffer(usecase.MemberInput{
		NoKTP:    "3173082501990001",
		Nama:     "Ani",
		Alamat:   "Bandung",
		TglLahir: "1999-01-25",
	})

	err := coordinator.Submit(context.Background(), func(ctx context.Context) error {
		input := modal.Buffer()
		_, err := api.CreateMember(ctx, &input)

		return err
	}, "Member berhasil ditambahkan")
	require.NoError(t, err)

	assert.Equal(t, StateClosed, modal.State(), "modal closes on success")
	assert.Equal(t, "Member berhasil ditambahkan", store.Alert())

	count := 0
	for _, m := range store.Items() {
		if m.NoKTP == "3173082501990001" {
			count++
		}
	}
	assert.Equal(t, 1, count, "new identity number appears exactly once after re-fetch")
}

func TestMutationCoordinator_FailureKeepsModalOpen(t *testing.T) {
	fake := &fakeLibrary{failPath: "/member"}
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	session := newTestSession(t)
	api := NewAPIClient(server.URL, session)

	store := NewResourceStore(api.ListMembers, session.HandleUnauthorized)
	modal := NewModalSession(usecase.MemberInput{}, nil)
	coordinator := NewMutationCoordinator(store, modal, session)

	modal.Open(ModeCreate, usecase.MemberInput{})
	modal.SetBuffer(usecase.MemberInput{NoKTP: "111", Nama: "Ani", Alamat: "Bandung", TglLahir: "1999-01-25"})

	err := coordinator.Submit(context.Background(), func(ctx context.Context) error {
		input := modal.Buffer()
		_, err := api.CreateMember(ctx, &input)

		return err
	}, "Member berhasil ditambahkan")
	require.Error(t, err)

	assert.Equal(t, StateOpen, modal.State(), "modal stays open for correction")
	assert.Equal(t, "111", modal.Buffer().NoKTP, "buffer retained on failure")
	assert.Equal(t, "boom", store.ErrorMessage())
}

func indexOf(requests []string, want string) int {
	for i, r := range requests {
		if r == want {
			return i
		}
	}

	return -1
}
