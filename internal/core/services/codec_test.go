package services_test

import (
	"testing"

	"github.com/SscSPs/md_util/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		minor  int64
		places int
		want   string
	}{
		{12345, 2, "123.45"},
		{-5, 2, "-0.05"},
		{7, 0, "7"},
		{1, 4, "0.0001"},
		{0, 3, "0"},
		{1000, 3, "1"},
	}
	for _, tt := range tests {
		got := services.ToDecimal(tt.minor, tt.places)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "ToDecimal(%d, %d) = %s, want %s", tt.minor, tt.places, got, tt.want)
	}
}

func TestToDecimal_IsExact(t *testing.T) {
	for places := 0; places <= services.MaxDecimalPlaces; places++ {
		for _, minor := range []int64{1, 3, 7, 99, 12345678901, -98765} {
			d := services.ToDecimal(minor, places)
			assert.Equal(t, minor, services.ToMinorUnits(d, places))
			assert.True(t, d.Shift(int32(places)).Equal(decimal.NewFromInt(minor)))
		}
	}
}

func TestToMinorUnits_RoundsHalfToEven(t *testing.T) {
	assert.Equal(t, int64(12), services.ToMinorUnits(decimal.RequireFromString("0.125"), 2))
	assert.Equal(t, int64(14), services.ToMinorUnits(decimal.RequireFromString("0.135"), 2))
	assert.Equal(t, int64(-12), services.ToMinorUnits(decimal.RequireFromString("-0.125"), 2))
}

func TestValidDecimalPlaces(t *testing.T) {
	assert.True(t, services.ValidDecimalPlaces(0))
	assert.True(t, services.ValidDecimalPlaces(4))
	assert.False(t, services.ValidDecimalPlaces(-1))
	assert.False(t, services.ValidDecimalPlaces(5))
}
