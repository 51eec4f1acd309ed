package utils

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/md_util/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceFractionDigits is the minimum number of fraction digits shown for prices.
const PriceFractionDigits = 8

// lookupCurrency returns the go-money definition for code, falling back to USD.
func lookupCurrency(code string) *money.Currency {
	if cur := money.GetCurrency(strings.ToUpper(code)); cur != nil {
		return cur
	}
	return money.GetCurrency(money.USD)
}

// FormatPrice renders a price in the display currency with eight fraction
// digits, e.g. 10 in USD gives "$10.00000000".
func FormatPrice(price float64, currencyCode string) string {
	return formatScaled(decimal.NewFromFloat(price), PriceFractionDigits, lookupCurrency(currencyCode))
}

// FormatAmount renders an account amount using the currency's own decimal places.
// Example: 12.3456 with USD (2 places) returns "$12.35".
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	return formatScaled(amount, currency.DecimalPlaces, lookupCurrency(currency.CurrencyCode))
}

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// formatScaled renders value with the given fraction digits in the currency's
// layout. go-money formats int64 minor units; values beyond that range are
// laid out the same way from their decimal string.
func formatScaled(value decimal.Decimal, places int, cur *money.Currency) string {
	scaled := value.Shift(int32(places)).RoundBank(0)
	if scaled.LessThanOrEqual(maxMinorUnits) && scaled.GreaterThanOrEqual(minMinorUnits) {
		f := money.NewFormatter(places, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
		return f.Format(scaled.IntPart())
	}

	whole, fraction, _ := strings.Cut(scaled.Abs().Shift(-int32(places)).StringFixed(int32(places)), ".")
	amount := groupThousands(whole, cur.Thousand)
	if places > 0 {
		amount += cur.Decimal + fraction
	}
	result := strings.Replace(cur.Template, "1", amount, 1)
	result = strings.Replace(result, "$", cur.Grapheme, 1)
	if scaled.IsNegative() {
		result = "-" + result
	}
	return result
}

func groupThousands(digits, separator string) string {
	if separator == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.RoundBank(int32(precision)).StringFixed(int32(precision))
}
