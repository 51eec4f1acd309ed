package domain

import (
	"fmt"

	"github.com/SscSPs/md_util/internal/apperrors"
)

// Snapshot is an immutable point-in-time rate of a security.
type Snapshot struct {
	DateInt  DateInt `json:"dateInt"`
	UserRate float64 `json:"userRate"`
}

// Security represents a tradable currency or instrument owned by the host.
// Snapshots are kept in ascending date order; the last one is the most recent.
type Security struct {
	SecurityID   string     `json:"securityID"`
	Name         string     `json:"name"`
	TickerSymbol string     `json:"tickerSymbol"`
	UserRate     float64    `json:"userRate"` // cached rate, overwritten by reconciliation
	Snapshots    []Snapshot `json:"snapshots"`
}

// LatestSnapshot returns the most recent snapshot.
func (s *Security) LatestSnapshot() (Snapshot, error) {
	if len(s.Snapshots) == 0 {
		return Snapshot{}, fmt.Errorf("%w: security %s (%s) has no snapshots", apperrors.ErrInvalidState, s.Name, s.TickerSymbol)
	}
	return s.Snapshots[len(s.Snapshots)-1], nil
}

// Clone returns a deep copy, so hosts can hand out values they keep owning.
func (s Security) Clone() Security {
	s.Snapshots = append([]Snapshot(nil), s.Snapshots...)
	return s
}
