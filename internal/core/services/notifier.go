package services

import (
	"log/slog"

	"github.com/SscSPs/md_util/internal/core/domain"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
	"github.com/SscSPs/md_util/internal/platform/messages"
	"github.com/SscSPs/md_util/internal/utils"
)

// MsgPriceChanged is the bundle key of the price change notice.
const MsgPriceChanged = "price.changed"

// LogNotifier writes price change notices to a structured logger, localized
// through a message bundle.
type LogNotifier struct {
	logger          *slog.Logger
	bundle          messages.Bundle
	displayCurrency string
}

// NotifierOption is a functional option for configuring the LogNotifier
type NotifierOption func(*LogNotifier)

// WithNotifierLogger sets the logger notices are written to.
func WithNotifierLogger(logger *slog.Logger) NotifierOption {
	return func(n *LogNotifier) {
		n.logger = logger
	}
}

// WithNotifierBundle sets the message bundle used to render notices.
func WithNotifierBundle(bundle messages.Bundle) NotifierOption {
	return func(n *LogNotifier) {
		n.bundle = bundle
	}
}

// WithDisplayCurrency sets the currency prices are formatted in.
func WithDisplayCurrency(code string) NotifierOption {
	return func(n *LogNotifier) {
		n.displayCurrency = code
	}
}

// NewLogNotifier creates a notifier with an English bundle and USD prices by default.
func NewLogNotifier(options ...NotifierOption) *LogNotifier {
	n := &LogNotifier{}
	for _, option := range options {
		option(n)
	}
	if n.bundle == nil {
		n.bundle = messages.Default("en-US")
	}
	if n.displayCurrency == "" {
		n.displayCurrency = "USD"
	}
	return n
}

var _ portssvc.PriceChangeNotifier = (*LogNotifier)(nil)

// Text renders the localized notice.
func (n *LogNotifier) Text(notice domain.PriceChangeNotice) string {
	return n.bundle.Format(MsgPriceChanged,
		notice.SecurityName,
		notice.TickerSymbol,
		utils.FormatPrice(notice.OldPrice, n.displayCurrency),
		utils.FormatPrice(notice.NewPrice, n.displayCurrency),
	)
}

// PriceChanged logs the notice at info level.
func (n *LogNotifier) PriceChanged(notice domain.PriceChangeNotice) {
	logger := n.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info(n.Text(notice),
		slog.String("security", notice.SecurityName),
		slog.String("ticker", notice.TickerSymbol),
		slog.Float64("old_rate", notice.OldRate),
		slog.Float64("new_rate", notice.NewRate),
		slog.Float64("old_price", notice.OldPrice),
		slog.Float64("new_price", notice.NewPrice),
	)
}
