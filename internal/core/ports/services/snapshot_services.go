package services

import "github.com/SscSPs/md_util/internal/core/domain"

// SnapshotSvc selects snapshots out of a security's history.
type SnapshotSvc interface {
	// LatestSnapshot returns the most recent snapshot.
	LatestSnapshot(security *domain.Security) (domain.Snapshot, error)

	// SelectSnapshotForDate returns the newest snapshot dated on or before date,
	// or the oldest one when date predates the history. It never mutates security.
	SelectSnapshotForDate(security *domain.Security, date domain.DateInt) (domain.Snapshot, error)

	// SnapshotForDate reconciles the cached rate against the latest snapshot
	// (unless disabled) and then behaves like SelectSnapshotForDate.
	SnapshotForDate(security *domain.Security, date domain.DateInt) (domain.Snapshot, error)
}
