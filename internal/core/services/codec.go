package services

import (
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces is the largest minor-unit digit count a host currency uses.
const MaxDecimalPlaces = 4

// ValidDecimalPlaces reports whether places is a supported decimal-places setting.
func ValidDecimalPlaces(places int) bool {
	return places >= 0 && places <= MaxDecimalPlaces
}

// ToDecimal converts a minor-unit amount (e.g. cents) to its decimal value,
// i.e. minorUnits / 10^decimalPlaces.
func ToDecimal(minorUnits int64, decimalPlaces int) decimal.Decimal {
	return decimal.New(minorUnits, -int32(decimalPlaces))
}

// ToMinorUnits converts a decimal value to minor units, rounding half to even
// when value has more digits than the currency carries.
func ToMinorUnits(value decimal.Decimal, decimalPlaces int) int64 {
	return value.Shift(int32(decimalPlaces)).RoundBank(0).IntPart()
}
