package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	portsrepo "github.com/SscSPs/md_util/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBalanceRepository implements the BalanceReader interface over the entries table.
type PgxBalanceRepository struct {
	BaseRepository
	today func() domain.DateInt
}

func newPgxBalanceRepository(db *pgxpool.Pool) *PgxBalanceRepository {
	return &PgxBalanceRepository{
		BaseRepository: BaseRepository{Pool: db},
		today:          domain.Today,
	}
}

var (
	_ portsrepo.BalanceReader = (*PgxBalanceRepository)(nil)
	_ portsrepo.HostClock     = (*PgxBalanceRepository)(nil)
)

// Today returns the day current balances are computed as of.
func (r *PgxBalanceRepository) Today() domain.DateInt { return r.today() }

// CurrentBalance sums entries up to today. The recursive form walks the
// subtree with UNION so a malformed parent loop still terminates.
func (r *PgxBalanceRepository) CurrentBalance(ctx context.Context, account *domain.Account, recursive bool) (int64, error) {
	if err := r.accountExists(ctx, account.AccountID); err != nil {
		return 0, err
	}

	query := `
		SELECT COALESCE(SUM(amount_minor), 0)::BIGINT
		FROM entries
		WHERE account_id = $1 AND entry_date <= $2;
	`
	if recursive {
		query = `
			WITH RECURSIVE subtree AS (
				SELECT account_id FROM accounts WHERE account_id = $1
				UNION
				SELECT a.account_id FROM accounts a JOIN subtree s ON a.parent_account_id = s.account_id
			)
			SELECT COALESCE(SUM(e.amount_minor), 0)::BIGINT
			FROM entries e
			JOIN subtree s ON s.account_id = e.account_id
			WHERE e.entry_date <= $2;
		`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, query, account.AccountID, int32(r.Today())).Scan(&total); err != nil {
		return 0, queryFailed(err, "current balance of account %s", account.AccountID)
	}
	return total, nil
}

// BalancesAsOfDates returns the account's own balances for all dates in one query.
func (r *PgxBalanceRepository) BalancesAsOfDates(ctx context.Context, _ *domain.Book, account *domain.Account, dates []domain.DateInt) ([]int64, error) {
	if err := r.accountExists(ctx, account.AccountID); err != nil {
		return nil, err
	}

	asOf := make([]int32, len(dates))
	for i, d := range dates {
		asOf[i] = int32(d)
	}

	query := `
		SELECT d.ord, COALESCE(SUM(e.amount_minor), 0)::BIGINT
		FROM unnest($2::INTEGER[]) WITH ORDINALITY AS d(as_of, ord)
		LEFT JOIN entries e ON e.account_id = $1 AND e.entry_date <= d.as_of
		GROUP BY d.ord
		ORDER BY d.ord;
	`
	rows, err := r.Pool.Query(ctx, query, account.AccountID, asOf)
	if err != nil {
		return nil, queryFailed(err, "balances of account %s", account.AccountID)
	}
	defer rows.Close()

	balances := make([]int64, len(dates))
	for rows.Next() {
		var ord, balance int64
		if err := rows.Scan(&ord, &balance); err != nil {
			return nil, queryFailed(err, "balance row of account %s", account.AccountID)
		}
		if ord < 1 || ord > int64(len(dates)) {
			return nil, fmt.Errorf("%w: balance ordinal %d out of range", apperrors.ErrInvalidState, ord)
		}
		balances[ord-1] = balance
	}
	if err := rows.Err(); err != nil {
		return nil, queryFailed(err, "balances of account %s", account.AccountID)
	}
	return balances, nil
}
