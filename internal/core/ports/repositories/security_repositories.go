package repositories

import (
	"context"

	"github.com/SscSPs/md_util/internal/core/domain"
)

// SecurityReader defines read operations for securities and their snapshots
type SecurityReader interface {
	// FindSecurityByID returns a copy of the security with its snapshots in ascending date order.
	FindSecurityByID(ctx context.Context, securityID string) (*domain.Security, error)
}

// SecurityWriter defines write operations for securities
type SecurityWriter interface {
	// UpdateUserRate stores the cached rate of a security.
	UpdateUserRate(ctx context.Context, securityID string, rate float64) error
}

// SecurityRepositoryFacade combines all security-related repository interfaces
type SecurityRepositoryFacade interface {
	SecurityReader
	SecurityWriter
}
