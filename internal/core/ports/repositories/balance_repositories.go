package repositories

import (
	"context"

	"github.com/SscSPs/md_util/internal/core/domain"
)

// BalanceReader is the host's raw balance query. All amounts are in the
// minor units of the queried account's currency.
type BalanceReader interface {
	// CurrentBalance returns the balance of the account as of today; when recursive
	// is true the balances of all descendant accounts are included.
	CurrentBalance(ctx context.Context, account *domain.Account, recursive bool) (int64, error)

	// BalancesAsOfDates returns the account's own balance at the end of each date,
	// as a slice parallel to dates.
	BalancesAsOfDates(ctx context.Context, book *domain.Book, account *domain.Account, dates []domain.DateInt) ([]int64, error)
}
