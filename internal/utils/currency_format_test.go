package utils

import (
	"testing"

	"github.com/SscSPs/md_util/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		currency string
		want     string
	}{
		{"whole", 10, "USD", "$10.00000000"},
		{"fraction", 0.125, "usd", "$0.12500000"},
		{"thousands", 12345.5, "USD", "$12,345.50000000"},
		{"unknown currency falls back", 1, "???", "$1.00000000"},
		{"largest int64 scale", 9e10, "USD", "$90,000,000,000.00000000"},
		{"beyond int64 minor units", 1e11, "USD", "$100,000,000,000.00000000"},
		{"far beyond int64 minor units", 1.5e15, "USD", "$1,500,000,000,000,000.00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price, tt.currency))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	usd := domain.Currency{CurrencyCode: "USD", DecimalPlaces: 2}
	assert.Equal(t, "$12.35", FormatAmount(decimal.RequireFromString("12.3456"), usd))
	assert.Equal(t, "$0.00", FormatAmount(decimal.Zero, usd))
	assert.Equal(t, "-$100,000,000,000,000,000.50", FormatAmount(decimal.RequireFromString("-100000000000000000.5"), usd))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "123", groupThousands("123", ","))
	assert.Equal(t, "1,234", groupThousands("1234", ","))
	assert.Equal(t, "123,456,789", groupThousands("123456789", ","))
	assert.Equal(t, "1234", groupThousands("1234", ""))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.346"), 2))
	assert.Equal(t, "12.34", FormatWithPrecision(decimal.RequireFromString("12.345"), 2), "half to even")
	assert.Equal(t, "12.3400", FormatWithPrecision(decimal.RequireFromString("12.34"), 4))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3"), 0))
}
