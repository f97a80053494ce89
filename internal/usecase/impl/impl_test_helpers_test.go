package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "perpus/internal/mocks/repository"
)

// testLogger returns a logger that swallows output so test runs stay quiet.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture bundles the per-repository mocks behind a transaction manager
// that executes the callback inline.
type txFixture struct {
	manager *mockRepo.StubTransactionManager
	members *mockRepo.MockMemberRepository
	books   *mockRepo.MockBookRepository
	loans   *mockRepo.MockLoanRepository
	fines   *mockRepo.MockFineRepository
	staffs  *mockRepo.MockStaffRepository
}

func newTxFixture(t *testing.T) *txFixture {
	members := mockRepo.NewMockMemberRepository(t)
	books := mockRepo.NewMockBookRepository(t)
	loans := mockRepo.NewMockLoanRepository(t)
	fines := mockRepo.NewMockFineRepository(t)
	staffs := mockRepo.NewMockStaffRepository(t)

	return &txFixture{
		manager: &mockRepo.StubTransactionManager{
			Factory: &mockRepo.StubRepositoryFactory{
				Members: members,
				Books:   books,
				Loans:   loans,
				Fines:   fines,
				Staffs:  staffs,
			},
		},
		members: members,
		books:   books,
		loans:   loans,
		fines:   fines,
		staffs:  staffs,
	}
}
