package services

import "github.com/SscSPs/md_util/internal/core/domain"

// PriceChangeNotifier receives a notice whenever a cached rate is overwritten.
type PriceChangeNotifier interface {
	PriceChanged(notice domain.PriceChangeNotice)
}

// RateReconciler keeps a security's cached rate in line with a snapshot.
type RateReconciler interface {
	// ReconcileCurrentRate overwrites security.UserRate with latest.UserRate when the
	// rounded prices differ and returns the price of latest.
	ReconcileCurrentRate(security *domain.Security, latest domain.Snapshot) (float64, error)
}
