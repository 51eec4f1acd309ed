package pgsql

import (
	portsrepo "github.com/SscSPs/md_util/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	balanceRepo := newPgxBalanceRepository(dbPool)
	return portsrepo.RepositoryProvider{
		BalanceRepo:  balanceRepo,
		BookRepo:     newPgxBookRepository(dbPool),
		SecurityRepo: newPgxSecurityRepository(dbPool),
		Clock:        balanceRepo,
	}
}
