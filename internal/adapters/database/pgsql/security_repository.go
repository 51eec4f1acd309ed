package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	portsrepo "github.com/SscSPs/md_util/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSecurityRepository implements the SecurityRepositoryFacade interface using pgxpool.
type PgxSecurityRepository struct {
	BaseRepository
}

func newPgxSecurityRepository(db *pgxpool.Pool) *PgxSecurityRepository {
	return &PgxSecurityRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SecurityRepositoryFacade = (*PgxSecurityRepository)(nil)

// FindSecurityByID retrieves a security and its snapshots in ascending date order.
func (r *PgxSecurityRepository) FindSecurityByID(ctx context.Context, securityID string) (*domain.Security, error) {
	var sec domain.Security
	err := r.Pool.QueryRow(ctx, `
		SELECT security_id, name, ticker_symbol, user_rate
		FROM securities
		WHERE security_id = $1;
	`, securityID).Scan(&sec.SecurityID, &sec.Name, &sec.TickerSymbol, &sec.UserRate)
	if err != nil {
		return nil, queryFailed(err, "security %s", securityID)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT snapshot_date, user_rate
		FROM security_snapshots
		WHERE security_id = $1
		ORDER BY snapshot_date, snapshot_seq;
	`, securityID)
	if err != nil {
		return nil, queryFailed(err, "snapshots of security %s", securityID)
	}
	defer rows.Close()

	for rows.Next() {
		var date int32
		var snap domain.Snapshot
		if err := rows.Scan(&date, &snap.UserRate); err != nil {
			return nil, queryFailed(err, "snapshot row of security %s", securityID)
		}
		snap.DateInt = domain.DateInt(date)
		sec.Snapshots = append(sec.Snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, queryFailed(err, "snapshots of security %s", securityID)
	}
	return &sec, nil
}

// UpdateUserRate stores the reconciled cached rate.
func (r *PgxSecurityRepository) UpdateUserRate(ctx context.Context, securityID string, rate float64) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE securities SET user_rate = $1 WHERE security_id = $2;`, rate, securityID)
	if err != nil {
		return queryFailed(err, "security %s", securityID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: security %s", apperrors.ErrNotFound, securityID)
	}
	return nil
}
