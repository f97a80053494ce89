package repository

import (
	"context"

	domainrepo "perpus/internal/domain/repository"
)

// StubTransactionManager runs the transactional callback inline against a
// fixed repository factory. Tests use it to exercise use case transaction
// bodies without a database.
type StubTransactionManager struct {
	Factory *StubRepositoryFactory

	// Err, when set, is returned immediately without invoking the callback.
	Err error
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(txRepoFactory domainrepo.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}

// StubRepositoryFactory hands out the mock repositories configured by the test.
type StubRepositoryFactory struct {
	Members *MockMemberRepository
	Books   *MockBookRepository
	Loans   *MockLoanRepository
	Fines   *MockFineRepository
	Staffs  *MockStaffRepository
}

func (f *StubRepositoryFactory) NewMemberRepository() domainrepo.MemberRepository {
	return f.Members
}

func (f *StubRepositoryFactory) NewBookRepository() domainrepo.BookRepository {
	return f.Books
}

func (f *StubRepositoryFactory) NewLoanRepository() domainrepo.LoanRepository {
	return f.Loans
}

func (f *StubRepositoryFactory) NewFineRepository() domainrepo.FineRepository {
	return f.Fines
}

func (f *StubRepositoryFactory) NewStaffRepository() domainrepo.StaffRepository {
	return f.Staffs
}
