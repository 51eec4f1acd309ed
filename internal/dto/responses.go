package dto

import (
	"github.com/SscSPs/md_util/internal/core/domain"
	"github.com/SscSPs/md_util/internal/utils"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SnapshotResponse represents a security snapshot
type SnapshotResponse struct {
	SecurityID string  `json:"securityID"`
	Date       string  `json:"date"`
	DateInt    int     `json:"dateInt"`
	UserRate   float64 `json:"userRate"`
}

// ToSnapshotResponse converts a domain snapshot to its response
func ToSnapshotResponse(securityID string, s domain.Snapshot) SnapshotResponse {
	resp := SnapshotResponse{
		SecurityID: securityID,
		Date:       s.DateInt.String(),
		DateInt:    int(s.DateInt),
		UserRate:   s.UserRate,
	}
	if t, err := s.DateInt.Time(); err == nil {
		resp.Date = t.Format("2006-01-02")
	}
	return resp
}

// ReconcileResponse reports the outcome of reconciling a security
type ReconcileResponse struct {
	SecurityID     string           `json:"securityID"`
	TickerSymbol   string           `json:"tickerSymbol"`
	Latest         SnapshotResponse `json:"latest"`
	Price          float64          `json:"price"`
	FormattedPrice string           `json:"formattedPrice"`
	Changed        bool             `json:"changed"`
	Message        string           `json:"message"`
}

// ToReconcileResponse converts a reconcile result to its response
func ToReconcileResponse(r domain.ReconcileResult, displayCurrency, message string) ReconcileResponse {
	return ReconcileResponse{
		SecurityID:     r.SecurityID,
		TickerSymbol:   r.TickerSymbol,
		Latest:         ToSnapshotResponse(r.SecurityID, r.Latest),
		Price:          r.Price,
		FormattedPrice: utils.FormatPrice(r.Price, displayCurrency),
		Changed:        r.Changed,
		Message:        message,
	}
}

// PriceResponse represents a rate converted to a price
type PriceResponse struct {
	Rate           float64 `json:"rate"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`
}

// CurrentBalanceResponse represents the current balance of an account
type CurrentBalanceResponse struct {
	AccountID     string          `json:"accountID"`
	AccountName   string          `json:"accountName"`
	CurrencyCode  string          `json:"currencyCode"`
	DecimalPlaces int             `json:"decimalPlaces"`
	AsOf          string          `json:"asOf"`
	Balance       decimal.Decimal `json:"balance"`
	Formatted     string          `json:"formatted"`
	Message       string          `json:"message"`
}

// ToCurrentBalanceResponse converts a current balance to its response
func ToCurrentBalanceResponse(b domain.CurrentBalance, message string) CurrentBalanceResponse {
	return CurrentBalanceResponse{
		AccountID:     b.AccountID,
		AccountName:   b.AccountName,
		CurrencyCode:  b.Currency.CurrencyCode,
		DecimalPlaces: b.DecimalPlaces,
		AsOf:          b.AsOf.String(),
		Balance:       b.Balance,
		Formatted:     utils.FormatAmount(b.Balance, b.Currency),
		Message:       message,
	}
}

// DatedBalanceResponse is the balance of an account at the end of one date
type DatedBalanceResponse struct {
	Date      int             `json:"date"`
	Balance   decimal.Decimal `json:"balance"`
	Formatted string          `json:"formatted"`
}

// AccountBalancesResponse represents the balances of an account as of several dates
type AccountBalancesResponse struct {
	AccountID     string                 `json:"accountID"`
	AccountName   string                 `json:"accountName"`
	CurrencyCode  string                 `json:"currencyCode"`
	DecimalPlaces int                    `json:"decimalPlaces"`
	Balances      []DatedBalanceResponse `json:"balances"`
}

// ToAccountBalancesResponse converts account balances to their response, keeping date order
func ToAccountBalancesResponse(b domain.AccountBalances) AccountBalancesResponse {
	resp := AccountBalancesResponse{
		AccountID:     b.AccountID,
		AccountName:   b.AccountName,
		CurrencyCode:  b.Currency.CurrencyCode,
		DecimalPlaces: b.DecimalPlaces,
		Balances:      make([]DatedBalanceResponse, len(b.Balances)),
	}
	for i, balance := range b.Balances {
		resp.Balances[i] = DatedBalanceResponse{
			Date:      int(b.Dates[i]),
			Balance:   balance,
			Formatted: utils.FormatAmount(balance, b.Currency),
		}
	}
	return resp
}

// AccountResponse represents an account of a book
type AccountResponse struct {
	AccountID           string `json:"accountID"`
	ParentAccountID     string `json:"parentAccountID,omitempty"`
	Name                string `json:"name"`
	InvestAccountNumber string `json:"investAccountNumber,omitempty"`
	AccountType         string `json:"accountType"`
	CurrencyCode        string `json:"currencyCode"`
	SubAccountCount     int    `json:"subAccountCount"`
}

// ToAccountResponse converts a domain account to its response
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:           a.AccountID,
		ParentAccountID:     a.ParentAccountID,
		Name:                a.Name,
		InvestAccountNumber: a.InvestAccountNumber,
		AccountType:         string(a.AccountType),
		CurrencyCode:        a.Currency.CurrencyCode,
		SubAccountCount:     len(a.SubAccounts),
	}
}
