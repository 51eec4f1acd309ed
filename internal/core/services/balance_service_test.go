package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
	"github.com/SscSPs/md_util/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var usd = domain.Currency{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", DecimalPlaces: 2}

// BalanceServiceTestSuite covers current and historical balance aggregation
type BalanceServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	reader  *MockBalanceReader
	service portssvc.BalanceSvc
	book    *domain.Book
	dates   []domain.DateInt
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.reader = new(MockBalanceReader)
	suite.service = services.NewBalanceService(suite.reader)
	suite.book = &domain.Book{BookID: "book-1", Name: "Household"}
	suite.dates = []domain.DateInt{20200101, 20200601, 20211231}
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}

func account(id string, accountType domain.AccountType, subs ...*domain.Account) *domain.Account {
	acct := &domain.Account{AccountID: id, Name: id, AccountType: accountType, Currency: usd, SubAccounts: subs}
	for _, sub := range subs {
		sub.ParentAccountID = id
	}
	return acct
}

func decimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func (suite *BalanceServiceTestSuite) assertDecimals(want, got []decimal.Decimal) {
	suite.Require().Len(got, len(want))
	for i := range want {
		suite.True(want[i].Equal(got[i]), "index %d: want %s, got %s", i, want[i], got[i])
	}
}

func (suite *BalanceServiceTestSuite) TestCurrentBalance_AssetIsRecursive() {
	acct := account("brokerage", domain.Asset)
	suite.reader.On("CurrentBalance", suite.ctx, acct, true).Return(int64(12345), nil).Once()

	balance, err := suite.service.CurrentBalance(suite.ctx, acct)
	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("123.45").Equal(balance))
	suite.reader.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestCurrentBalance_OtherTypesUseOwnBalance() {
	acct := account("card", domain.CreditCard)
	acct.Currency.DecimalPlaces = 0
	suite.reader.On("CurrentBalance", suite.ctx, acct, false).Return(int64(-250), nil).Once()

	balance, err := suite.service.CurrentBalance(suite.ctx, acct)
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(-250).Equal(balance))
	suite.reader.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestCurrentBalance_HostErrorPassesThrough() {
	acct := account("card", domain.CreditCard)
	failure := errors.New("host unavailable")
	suite.reader.On("CurrentBalance", suite.ctx, acct, false).Return(int64(0), failure).Once()

	_, err := suite.service.CurrentBalance(suite.ctx, acct)
	suite.Equal(failure, err)
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_Leaf() {
	acct := account("checking", domain.Bank)
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, acct, suite.dates).Return([]int64{100, 250, -5}, nil).Once()

	got, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.Require().NoError(err)
	suite.assertDecimals(decimals("1", "2.5", "-0.05"), got)
	suite.reader.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_NonAssetIgnoresChildren() {
	child := account("sub", domain.Bank)
	acct := account("checking", domain.Bank, child)
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, acct, suite.dates).Return([]int64{1, 2, 3}, nil).Once()

	got, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.Require().NoError(err)
	suite.assertDecimals(decimals("0.01", "0.02", "0.03"), got)
	suite.reader.AssertNotCalled(suite.T(), "BalancesAsOfDates", suite.ctx, suite.book, child, suite.dates)
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_AssetWithTwoLeaves() {
	left := account("left", domain.Bank)
	right := account("right", domain.Investment)
	acct := account("assets", domain.Asset, left, right)
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, acct, suite.dates).Return([]int64{0, 0, 0}, nil).Once()
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, left, suite.dates).Return([]int64{100, 200, 300}, nil).Once()
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, right, suite.dates).Return([]int64{1, 2, 3}, nil).Once()

	got, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.Require().NoError(err)
	suite.assertDecimals(decimals("1.01", "2.02", "3.03"), got)
	suite.reader.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_NestedAssetsCountedOnce() {
	grandchild := account("fund", domain.SecurityAcc)
	inner := account("brokerage", domain.Asset, grandchild)
	acct := account("assets", domain.Asset, inner)
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, acct, suite.dates).Return([]int64{1, 1, 1}, nil).Once()
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, inner, suite.dates).Return([]int64{10, 10, 10}, nil).Once()
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, grandchild, suite.dates).Return([]int64{100, 200, 300}, nil).Once()

	got, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.Require().NoError(err)
	suite.assertDecimals(decimals("1.11", "2.11", "3.11"), got)
	suite.reader.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_DoesNotMutateHostSlice() {
	child := account("child", domain.Bank)
	acct := account("assets", domain.Asset, child)
	own := []int64{5, 5, 5}
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, acct, suite.dates).Return(own, nil).Once()
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, child, suite.dates).Return([]int64{1, 1, 1}, nil).Once()

	_, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.Require().NoError(err)
	suite.Equal([]int64{5, 5, 5}, own)
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_Cycle() {
	child := account("child", domain.Bank)
	acct := account("assets", domain.Asset, child)
	child.SubAccounts = []*domain.Account{acct}
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, mock.Anything, suite.dates).Return([]int64{0, 0, 0}, nil)

	_, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.ErrorIs(err, apperrors.ErrCycle)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_SharedDescendantCountedOnce() {
	shared := account("fund", domain.SecurityAcc)
	left := account("left", domain.Asset, shared)
	right := account("right", domain.Asset)
	right.SubAccounts = []*domain.Account{shared}
	acct := account("assets", domain.Asset, left, right)
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, acct, suite.dates).Return([]int64{0, 0, 0}, nil).Once()
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, left, suite.dates).Return([]int64{1, 1, 1}, nil).Once()
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, right, suite.dates).Return([]int64{10, 10, 10}, nil).Once()
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, shared, suite.dates).Return([]int64{100, 200, 300}, nil).Once()

	got, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.Require().NoError(err)
	suite.assertDecimals(decimals("1.11", "2.11", "3.11"), got)
	suite.reader.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_DeepCycle() {
	leaf := account("leaf", domain.Bank)
	inner := account("inner", domain.Asset, leaf)
	acct := account("assets", domain.Asset, inner)
	leaf.SubAccounts = []*domain.Account{inner}
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, mock.Anything, suite.dates).Return([]int64{0, 0, 0}, nil)

	_, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.ErrorIs(err, apperrors.ErrCycle)
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_WrongLengthFromHost() {
	acct := account("checking", domain.Bank)
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, acct, suite.dates).Return([]int64{1, 2}, nil).Once()

	_, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_HostErrorPassesThrough() {
	child := account("child", domain.Bank)
	acct := account("assets", domain.Asset, child)
	failure := errors.New("query failed")
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, acct, suite.dates).Return([]int64{0, 0, 0}, nil).Once()
	suite.reader.On("BalancesAsOfDates", suite.ctx, suite.book, child, suite.dates).Return(nil, failure).Once()

	_, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, suite.dates)
	suite.Equal(failure, err)
}

func (suite *BalanceServiceTestSuite) TestBalancesAsOfDates_EmptyDates() {
	acct := account("assets", domain.Asset, account("child", domain.Bank))

	got, err := suite.service.BalancesAsOfDates(suite.ctx, suite.book, acct, nil)
	suite.Require().NoError(err)
	suite.Empty(got)
	suite.NotNil(got)
	suite.reader.AssertNotCalled(suite.T(), "BalancesAsOfDates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
