package services_test

import (
	"context"

	"github.com/SscSPs/md_util/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBalanceReader is a mock type for the BalanceReader interface
type MockBalanceReader struct {
	mock.Mock
}

func (m *MockBalanceReader) CurrentBalance(ctx context.Context, account *domain.Account, recursive bool) (int64, error) {
	args := m.Called(ctx, account, recursive)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceReader) BalancesAsOfDates(ctx context.Context, book *domain.Book, account *domain.Account, dates []domain.DateInt) ([]int64, error) {
	args := m.Called(ctx, book, account, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockBookReader is a mock type for the BookReader interface
type MockBookReader struct {
	mock.Mock
}

func (m *MockBookReader) LoadBook(ctx context.Context, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

// MockSecurityRepository is a mock type for the SecurityRepositoryFacade interface
type MockSecurityRepository struct {
	mock.Mock
}

func (m *MockSecurityRepository) FindSecurityByID(ctx context.Context, securityID string) (*domain.Security, error) {
	args := m.Called(ctx, securityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Security), args.Error(1)
}

func (m *MockSecurityRepository) UpdateUserRate(ctx context.Context, securityID string, rate float64) error {
	args := m.Called(ctx, securityID, rate)
	return args.Error(0)
}

// MockPriceChangeNotifier records price change notices
type MockPriceChangeNotifier struct {
	mock.Mock
}

func (m *MockPriceChangeNotifier) PriceChanged(notice domain.PriceChangeNotice) {
	m.Called(notice)
}

// MockRateReconciler is a mock type for the RateReconciler interface
type MockRateReconciler struct {
	mock.Mock
}

func (m *MockRateReconciler) ReconcileCurrentRate(security *domain.Security, latest domain.Snapshot) (float64, error) {
	args := m.Called(security, latest)
	return args.Get(0).(float64), args.Error(1)
}

// MockBalanceSvc is a mock type for the BalanceSvc interface
type MockBalanceSvc struct {
	mock.Mock
}

func (m *MockBalanceSvc) CurrentBalance(ctx context.Context, account *domain.Account) (decimal.Decimal, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBalanceSvc) BalancesAsOfDates(ctx context.Context, book *domain.Book, account *domain.Account, dates []domain.DateInt) ([]decimal.Decimal, error) {
	args := m.Called(ctx, book, account, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

func mockAnyNotice() any {
	return mock.AnythingOfType("domain.PriceChangeNotice")
}
