package models

import (
	"math"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate parses the date formats the dashboard writes: plain calendar
// dates and RFC 3339 timestamps.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StayNights returns the number of nights between two dates, rounded up to
// whole days and never less than 1. ok is false when either date is missing
// or unparseable.
func StayNights(from, to string) (nights int, ok bool) {
	start, ok := ParseDate(from)
	if !ok {
		return 0, false
	}
	end, ok := ParseDate(to)
	if !ok {
		return 0, false
	}
	days := math.Ceil(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1, true
	}
	return int(days), true
}

// DatedNights resolves the stay length from the destination's dates,
// preferring arrival/departure over the legacy check-in/check-out pair.
func (d *Destination) DatedNights() (int, bool) {
	if n, ok := StayNights(d.ArrivalDate, d.DepartureDate); ok {
		return n, true
	}
	return StayNights(d.CheckInDate, d.CheckOutDate)
}
