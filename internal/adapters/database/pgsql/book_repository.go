package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	portsrepo "github.com/SscSPs/md_util/internal/core/ports/repositories"
	"github.com/SscSPs/md_util/internal/core/services"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBookRepository implements the BookReader interface using pgxpool.
type PgxBookRepository struct {
	BaseRepository
}

func newPgxBookRepository(db *pgxpool.Pool) *PgxBookRepository {
	return &PgxBookRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BookReader = (*PgxBookRepository)(nil)

// LoadBook retrieves a book with its whole account tree.
func (r *PgxBookRepository) LoadBook(ctx context.Context, bookID string) (*domain.Book, error) {
	book := domain.Book{BookID: bookID}
	err := r.Pool.QueryRow(ctx, `SELECT name FROM books WHERE book_id = $1`, bookID).Scan(&book.Name)
	if err != nil {
		return nil, queryFailed(err, "book %s", bookID)
	}

	query := `
		SELECT a.account_id, a.book_id, COALESCE(a.parent_account_id, ''), a.name,
		       a.invest_account_number, a.account_type,
		       c.currency_code, c.symbol, c.name, c.decimal_places
		FROM accounts a
		JOIN currencies c ON c.currency_code = a.currency_code
		WHERE a.book_id = $1
		ORDER BY a.position, a.created_at, a.account_id;
	`
	rows, err := r.Pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, queryFailed(err, "accounts of book %s", bookID)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acct domain.Account
		var accountType string
		if err := rows.Scan(
			&acct.AccountID,
			&acct.BookID,
			&acct.ParentAccountID,
			&acct.Name,
			&acct.InvestAccountNumber,
			&accountType,
			&acct.Currency.CurrencyCode,
			&acct.Currency.Symbol,
			&acct.Currency.Name,
			&acct.Currency.DecimalPlaces,
		); err != nil {
			return nil, queryFailed(err, "account row of book %s", bookID)
		}
		acct.AccountType = domain.AccountType(accountType)
		if !services.ValidDecimalPlaces(acct.Currency.DecimalPlaces) {
			return nil, fmt.Errorf("%w: currency %s has unsupported decimal places %d",
				apperrors.ErrValidation, acct.Currency.CurrencyCode, acct.Currency.DecimalPlaces)
		}
		accounts = append(accounts, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, queryFailed(err, "accounts of book %s", bookID)
	}

	root, err := buildAccountTree(bookID, accounts)
	if err != nil {
		return nil, err
	}
	book.Root = root
	return &book, nil
}
