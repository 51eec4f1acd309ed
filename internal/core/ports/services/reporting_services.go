package services

import (
	"context"

	"github.com/SscSPs/md_util/internal/core/domain"
)

// ReportingSvc defines balance reports over stored account books
type ReportingSvc interface {
	// CurrentAccountBalance returns the current balance of an account.
	CurrentAccountBalance(ctx context.Context, bookID, accountID string) (*domain.CurrentBalance, error)

	// AccountBalancesAsOf returns the balances of an account as of each date.
	AccountBalancesAsOf(ctx context.Context, bookID, accountID string, dates []domain.DateInt) (*domain.AccountBalances, error)

	// FindSubAccountByName finds a descendant account by case-insensitive name.
	FindSubAccountByName(ctx context.Context, bookID, accountID, name string) (*domain.Account, error)

	// FindSubAccountByInvestNumber finds a descendant account by investment account number.
	FindSubAccountByInvestNumber(ctx context.Context, bookID, accountID, number string) (*domain.Account, error)
}
