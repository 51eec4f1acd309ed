package services

import (
	"context"

	"github.com/SscSPs/md_util/internal/core/domain"
)

// SecuritySvc exposes snapshot selection and reconciliation on stored securities.
type SecuritySvc interface {
	// GetLatestSnapshot returns the most recent snapshot of a security.
	GetLatestSnapshot(ctx context.Context, securityID string) (*domain.Snapshot, error)

	// GetSnapshotForDate selects the snapshot in effect on date. With reconcile on
	// read enabled, a drifted cached rate is corrected and stored.
	GetSnapshotForDate(ctx context.Context, securityID string, date domain.DateInt) (*domain.Snapshot, error)

	// ReconcileSecurity aligns the cached rate with the latest snapshot and stores it.
	ReconcileSecurity(ctx context.Context, securityID string) (*domain.ReconcileResult, error)

	// ConvertRateToPrice returns the display price of a rate.
	ConvertRateToPrice(rate float64) (float64, error)
}
