package repositories

import "github.com/SscSPs/md_util/internal/core/domain"

// HostClock reports the calendar day the host computes current balances as of.
type HostClock interface {
	Today() domain.DateInt
}
