package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/md_util/internal/apperrors"
)

// DateInt is a calendar date encoded as year*10000 + month*100 + day (YYYYMMDD).
// Integer ordering matches chronological ordering for valid dates.
type DateInt int

// NewDateInt encodes the given calendar fields without normalizing them.
func NewDateInt(year int, month time.Month, day int) DateInt {
	return DateInt(year*10000 + int(month)*100 + day)
}

// DateIntFromTime returns the DateInt of the calendar day of t in t's location.
func DateIntFromTime(t time.Time) DateInt {
	y, m, d := t.Date()
	return NewDateInt(y, m, d)
}

// Today returns the current local calendar day.
func Today() DateInt { return DateIntFromTime(time.Now()) }

// Year returns the year component.
func (d DateInt) Year() int { return int(d) / 10000 }

// Month returns the month component.
func (d DateInt) Month() time.Month { return time.Month((int(d) % 10000) / 100) }

// Day returns the day-of-month component.
func (d DateInt) Day() int { return int(d) % 100 }

// Valid reports whether d names an existing calendar day.
func (d DateInt) Valid() bool {
	if d <= 0 {
		return false
	}
	t := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	y, m, day := t.Date()
	return y == d.Year() && m == d.Month() && day == d.Day()
}

// Time returns midnight UTC of the encoded day.
// Values that are not a calendar day fail with apperrors.ErrValidation.
func (d DateInt) Time() (time.Time, error) {
	if !d.Valid() {
		return time.Time{}, fmt.Errorf("%w: %d is not a valid date", apperrors.ErrValidation, int(d))
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// String formats the date as YYYYMMDD.
func (d DateInt) String() string { return fmt.Sprintf("%08d", int(d)) }

// ParseDateInt parses "YYYYMMDD" or "YYYY-MM-DD".
func ParseDateInt(s string) (DateInt, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "-") {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid date %q: %v", apperrors.ErrValidation, s, err)
		}
		return DateIntFromTime(t), nil
	}
	if len(s) != 8 {
		return 0, fmt.Errorf("%w: invalid date %q, want YYYYMMDD", apperrors.ErrValidation, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid date %q: %v", apperrors.ErrValidation, s, err)
	}
	d := DateInt(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %q is not a calendar date", apperrors.ErrValidation, s)
	}
	return d, nil
}
