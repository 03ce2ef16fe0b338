// Package dateonly provides a calendar date without a time-of-day or zone,
// serialized as "2006-01-02". Date implements encoding.TextMarshaler and
// TextUnmarshaler, which also makes it usable as a JSON map key, so
// map[dateonly.Date]T round-trips through encoding/json without a custom
// converter.
package dateonly

import (
	"fmt"
	"time"
)

// Layout is the wire format for dates.
const Layout = time.DateOnly

// Date is a calendar date. The zero value is usable and reports IsZero.
type Date struct {
	year  int
	month time.Month
	day   int
}

// New builds a Date from its components. Out-of-range components are
// normalized the way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates t to its calendar date in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current date in the local zone.
func Today() Date {
	return FromTime(time.Now())
}

// Parse reads a Date from the wire format.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("dateonly: parse %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date shifted by days, which may be negative.
func (d Date) AddDays(days int) Date {
	return FromTime(d.Time().AddDate(0, 0, days))
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d follows other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time().Format(Layout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
