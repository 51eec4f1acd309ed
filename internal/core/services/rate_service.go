package services

import (
	"fmt"
	"math"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits a price is rounded to.
const PriceScale = 10

// RoundPrice rounds price to PriceScale fractional digits, half to even.
// The float is first read as its shortest decimal representation, so 0.15
// rounds as the decimal 0.15 and not as its binary approximation.
func RoundPrice(price float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return price
	}
	return decimal.NewFromFloat(price).RoundBank(PriceScale).InexactFloat64()
}

// RateToPrice converts a stored exchange rate to a display price: 1/rate rounded
// with RoundPrice. A zero or non-finite rate is an apperrors.ErrInvalidState.
func RateToPrice(rate float64) (float64, error) {
	if rate == 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("%w: cannot convert rate %v to a price", apperrors.ErrInvalidState, rate)
	}
	inverse := 1 / rate
	if math.IsInf(inverse, 0) {
		return 0, fmt.Errorf("%w: rate %v is too small to convert to a price", apperrors.ErrInvalidState, rate)
	}
	return RoundPrice(inverse), nil
}

// rateService reconciles cached security rates.
type rateService struct {
	BaseService
	notifier portssvc.PriceChangeNotifier
}

// RateServiceOption is a functional option for configuring the rate service
type RateServiceOption func(*rateService)

// WithPriceChangeNotifier sets where change notices are sent.
func WithPriceChangeNotifier(notifier portssvc.PriceChangeNotifier) RateServiceOption {
	return func(s *rateService) {
		s.notifier = notifier
	}
}

// NewRateService creates a new rate service. Without a notifier, notices are
// logged through the default slog logger in English.
func NewRateService(options ...RateServiceOption) portssvc.RateReconciler {
	svc := &rateService{}
	for _, option := range options {
		option(svc)
	}
	if svc.notifier == nil {
		svc.notifier = NewLogNotifier()
	}
	return svc
}

// Ensure rateService implements the RateReconciler interface
var _ portssvc.RateReconciler = (*rateService)(nil)

// ReconcileCurrentRate compares the prices of the cached rate and of latest. When
// they differ, the cached rate is overwritten and a notice is sent. Calling it
// again with the same snapshot is a no-op.
func (s *rateService) ReconcileCurrentRate(security *domain.Security, latest domain.Snapshot) (float64, error) {
	price, err := RateToPrice(latest.UserRate)
	if err != nil {
		return 0, fmt.Errorf("snapshot %s of security %s: %w", latest.DateInt, security.TickerSymbol, err)
	}
	oldPrice, err := RateToPrice(security.UserRate)
	if err != nil {
		return 0, fmt.Errorf("cached rate of security %s: %w", security.TickerSymbol, err)
	}

	if price != oldPrice {
		notice := domain.PriceChangeNotice{
			SecurityName: security.Name,
			TickerSymbol: security.TickerSymbol,
			OldRate:      security.UserRate,
			NewRate:      latest.UserRate,
			OldPrice:     oldPrice,
			NewPrice:     price,
		}
		security.UserRate = latest.UserRate
		s.notifier.PriceChanged(notice)
	}

	return price, nil
}
