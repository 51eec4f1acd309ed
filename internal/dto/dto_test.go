package dto

import (
	"testing"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDates(t *testing.T) {
	dates, err := ParseDates([]string{"20200101,2020-06-01", " 20211231 "})
	require.NoError(t, err)
	assert.Equal(t, []domain.DateInt{20200101, 20200601, 20211231}, dates)

	_, err = ParseDates([]string{"20200101,20201399"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ParseDates([]string{" , "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRegisterDateValidators_FreshEngine(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerDateValidators(v))

	type query struct {
		Date  string `validate:"dateint"`
		Dates string `validate:"dateints"`
	}
	assert.NoError(t, v.Struct(query{Date: "20200101", Dates: "20200101,2020-06-01"}))
	assert.Error(t, v.Struct(query{Date: "20200230", Dates: "20200101"}))
	assert.Error(t, v.Struct(query{Date: "20200101", Dates: "20200101,nope"}))
}

func TestRegisterValidators(t *testing.T) {
	RegisterValidators()
	RegisterValidators()

	assert.NoError(t, binding.Validator.ValidateStruct(SnapshotQuery{Date: "2020-08-15"}))
	assert.Error(t, binding.Validator.ValidateStruct(SnapshotQuery{Date: "2020-02-30"}))
	assert.NoError(t, binding.Validator.ValidateStruct(BalancesQuery{Dates: []string{"20200101,20200601"}}))
	assert.Error(t, binding.Validator.ValidateStruct(BalancesQuery{Dates: []string{"yesterday"}}))
	assert.Error(t, binding.Validator.ValidateStruct(SubAccountQuery{}))
	assert.NoError(t, binding.Validator.ValidateStruct(SubAccountQuery{InvestNumber: "ABC-123"}))
}

func TestToAccountBalancesResponse(t *testing.T) {
	resp := ToAccountBalancesResponse(domain.AccountBalances{
		AccountID:     "assets",
		AccountName:   "Assets",
		Currency:      domain.Currency{CurrencyCode: "USD", DecimalPlaces: 2},
		DecimalPlaces: 2,
		Dates:         []domain.DateInt{20211231, 20200101},
		Balances:      []decimal.Decimal{decimal.RequireFromString("1234.5"), decimal.Zero},
	})

	require.Len(t, resp.Balances, 2)
	assert.Equal(t, 20211231, resp.Balances[0].Date)
	assert.Equal(t, "$1,234.50", resp.Balances[0].Formatted)
	assert.Equal(t, 20200101, resp.Balances[1].Date)
	assert.Equal(t, "USD", resp.CurrencyCode)
}

func TestToSnapshotResponse(t *testing.T) {
	resp := ToSnapshotResponse("sec-1", domain.Snapshot{DateInt: 20200601, UserRate: 0.5})
	assert.Equal(t, "2020-06-01", resp.Date)
	assert.Equal(t, 20200601, resp.DateInt)
}
