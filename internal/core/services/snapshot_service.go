package services

import (
	"github.com/SscSPs/md_util/internal/core/domain"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
)

// snapshotService selects snapshots out of a security's history.
type snapshotService struct {
	reconciler      portssvc.RateReconciler
	reconcileOnRead bool
}

// SnapshotServiceOption is a functional option for configuring the snapshot service
type SnapshotServiceOption func(*snapshotService)

// WithReconcileOnRead controls whether SnapshotForDate first reconciles the
// cached rate against the latest snapshot. It is enabled by default.
func WithReconcileOnRead(enabled bool) SnapshotServiceOption {
	return func(s *snapshotService) {
		s.reconcileOnRead = enabled
	}
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(reconciler portssvc.RateReconciler, options ...SnapshotServiceOption) portssvc.SnapshotSvc {
	svc := &snapshotService{
		reconciler:      reconciler,
		reconcileOnRead: true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SnapshotSvc = (*snapshotService)(nil)

func (s *snapshotService) LatestSnapshot(security *domain.Security) (domain.Snapshot, error) {
	return security.LatestSnapshot()
}

// SelectSnapshotForDate walks back from the latest snapshot while it is dated
// after date. The oldest snapshot is returned when every snapshot is later.
func (s *snapshotService) SelectSnapshotForDate(security *domain.Security, date domain.DateInt) (domain.Snapshot, error) {
	if _, err := security.LatestSnapshot(); err != nil {
		return domain.Snapshot{}, err
	}
	i := len(security.Snapshots) - 1
	for i > 0 && security.Snapshots[i].DateInt > date {
		i--
	}
	return security.Snapshots[i], nil
}

func (s *snapshotService) SnapshotForDate(security *domain.Security, date domain.DateInt) (domain.Snapshot, error) {
	if s.reconcileOnRead {
		latest, err := security.LatestSnapshot()
		if err != nil {
			return domain.Snapshot{}, err
		}
		if _, err := s.reconciler.ReconcileCurrentRate(security, latest); err != nil {
			return domain.Snapshot{}, err
		}
	}
	return s.SelectSnapshotForDate(security, date)
}
