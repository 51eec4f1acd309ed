package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/md_util/internal/core/domain"
	portsrepo "github.com/SscSPs/md_util/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
)

// securityService implements the SecuritySvc interface
type securityService struct {
	BaseService
	securityRepo portsrepo.SecurityRepositoryFacade
	reconciler   portssvc.RateReconciler
	snapshots    portssvc.SnapshotSvc
}

// SecurityServiceOption is a functional option for configuring the security service
type SecurityServiceOption func(*securityService)

// WithSecurityLogger sets the logger used when no request logger is in context.
func WithSecurityLogger(logger *slog.Logger) SecurityServiceOption {
	return func(s *securityService) {
		s.Logger = logger
	}
}

// WithSnapshotService overrides the snapshot selector, e.g. to disable reconcile on read.
func WithSnapshotService(snapshots portssvc.SnapshotSvc) SecurityServiceOption {
	return func(s *securityService) {
		s.snapshots = snapshots
	}
}

// NewSecurityService creates a new security service with the provided options
func NewSecurityService(repo portsrepo.SecurityRepositoryFacade, reconciler portssvc.RateReconciler, options ...SecurityServiceOption) portssvc.SecuritySvc {
	svc := &securityService{
		securityRepo: repo,
		reconciler:   reconciler,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.snapshots == nil {
		svc.snapshots = NewSnapshotService(reconciler)
	}
	return svc
}

// Ensure securityService implements the SecuritySvc interface
var _ portssvc.SecuritySvc = (*securityService)(nil)

func (s *securityService) loadSecurity(ctx context.Context, securityID string) (*domain.Security, error) {
	security, err := s.securityRepo.FindSecurityByID(ctx, securityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load security %s: %w", securityID, err)
	}
	return security, nil
}

// persistRate stores the cached rate if reconciliation changed it.
func (s *securityService) persistRate(ctx context.Context, security *domain.Security, oldRate float64) (bool, error) {
	if security.UserRate == oldRate {
		return false, nil
	}
	if err := s.securityRepo.UpdateUserRate(ctx, security.SecurityID, security.UserRate); err != nil {
		s.LogError(ctx, err, "Failed to store reconciled rate",
			slog.String("security_id", security.SecurityID),
			slog.Float64("rate", security.UserRate))
		return true, fmt.Errorf("failed to store rate of security %s: %w", security.SecurityID, err)
	}
	return true, nil
}

func (s *securityService) GetLatestSnapshot(ctx context.Context, securityID string) (*domain.Snapshot, error) {
	security, err := s.loadSecurity(ctx, securityID)
	if err != nil {
		return nil, err
	}
	latest, err := s.snapshots.LatestSnapshot(security)
	if err != nil {
		return nil, err
	}
	return &latest, nil
}

func (s *securityService) GetSnapshotForDate(ctx context.Context, securityID string, date domain.DateInt) (*domain.Snapshot, error) {
	security, err := s.loadSecurity(ctx, securityID)
	if err != nil {
		return nil, err
	}
	oldRate := security.UserRate

	snapshot, err := s.snapshots.SnapshotForDate(security, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to select snapshot",
			slog.String("security_id", securityID),
			slog.String("date", date.String()))
		return nil, err
	}
	if _, err := s.persistRate(ctx, security, oldRate); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (s *securityService) ReconcileSecurity(ctx context.Context, securityID string) (*domain.ReconcileResult, error) {
	security, err := s.loadSecurity(ctx, securityID)
	if err != nil {
		return nil, err
	}
	oldRate := security.UserRate

	latest, err := security.LatestSnapshot()
	if err != nil {
		return nil, err
	}
	price, err := s.reconciler.ReconcileCurrentRate(security, latest)
	if err != nil {
		s.LogError(ctx, err, "Failed to reconcile security", slog.String("security_id", securityID))
		return nil, err
	}
	changed, err := s.persistRate(ctx, security, oldRate)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Security reconciled",
		slog.String("security_id", securityID),
		slog.Float64("price", price),
		slog.Bool("changed", changed))
	return &domain.ReconcileResult{
		SecurityID:   securityID,
		Name:         security.Name,
		TickerSymbol: security.TickerSymbol,
		Latest:       latest,
		Price:        price,
		Changed:      changed,
	}, nil
}

func (s *securityService) ConvertRateToPrice(rate float64) (float64, error) {
	return RateToPrice(rate)
}
