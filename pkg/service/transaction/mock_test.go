package transaction_test

import (
	"context"

	"github.com/kouame/payboard/pkg/domain/transaction"
	repo "github.com/kouame/payboard/pkg/repository/transaction"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of the repository port.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindAll(
	ctx context.Context,
	filters repo.Filters,
	page repo.Pagination,
	sort repo.Sort,
) (*repo.PaginatedResult, error) {
	args := m.Called(ctx, filters, page, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.PaginatedResult), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id transaction.ID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *MockRepository) Retry(ctx context.Context, id transaction.ID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *MockRepository) Cancel(ctx context.Context, id transaction.ID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}
