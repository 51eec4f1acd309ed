package services

import (
	"context"

	"github.com/SscSPs/md_util/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvc aggregates account balances and converts them to decimal values.
type BalanceSvc interface {
	// CurrentBalance returns the current balance; ASSET accounts include descendants.
	CurrentBalance(ctx context.Context, account *domain.Account) (decimal.Decimal, error)

	// BalancesAsOfDates returns one balance per date, in the order of dates.
	// ASSET accounts include the own balances of all descendants.
	BalancesAsOfDates(ctx context.Context, book *domain.Book, account *domain.Account, dates []domain.DateInt) ([]decimal.Decimal, error)
}
