// Package timezone converts times between IANA time zones with a typed
// unknown-zone error instead of the raw LoadLocation failure.
package timezone

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownZone is returned when a zone name cannot be resolved against
// the IANA database.
var ErrUnknownZone = errors.New("timezone: unknown zone")

// Convert returns t expressed in the named zone. The instant is unchanged,
// only the location differs.
func Convert(t time.Time, name string) (time.Time, error) {
	loc, err := load(name)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// ToUTC returns t expressed in UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// Now returns the current time in the named zone.
func Now(name string) (time.Time, error) {
	return Convert(time.Now(), name)
}

// Offset returns the UTC offset of the named zone at the instant t.
func Offset(name string, t time.Time) (time.Duration, error) {
	converted, err := Convert(t, name)
	if err != nil {
		return 0, err
	}
	_, seconds := converted.Zone()
	return time.Duration(seconds) * time.Second, nil
}

func load(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return loc, nil
}
