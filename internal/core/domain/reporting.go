package domain

import (
	"github.com/shopspring/decimal"
)

// PriceChangeNotice describes a cached rate that was brought in line with the latest snapshot.
type PriceChangeNotice struct {
	SecurityName string
	TickerSymbol string
	OldRate      float64
	NewRate      float64
	OldPrice     float64
	NewPrice     float64
}

// ReconcileResult is the outcome of reconciling one security.
type ReconcileResult struct {
	SecurityID   string
	Name         string
	TickerSymbol string
	Latest       Snapshot
	Price        float64
	Changed      bool
}

// AccountBalances holds the balances of one account as of several dates.
type AccountBalances struct {
	AccountID     string
	AccountName   string
	Currency      Currency
	DecimalPlaces int
	Dates         []DateInt
	Balances      []decimal.Decimal
}

// CurrentBalance holds the balance of one account as of now.
type CurrentBalance struct {
	AccountID     string
	AccountName   string
	Currency      Currency
	DecimalPlaces int
	AsOf          DateInt
	Balance       decimal.Decimal
}
