// Package timeutil holds calendar-day helpers shared by the layout code.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Day is the length of a calendar day. All dates are UTC so there are no
// daylight-saving jumps.
const Day = 24 * time.Hour

// LayoutISO is the calendar date layout used on every wire format.
const LayoutISO = "2006-01-02"

var dateLayouts = []string{
	LayoutISO,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006",
}

// ParseDate parses a calendar date and truncates it to the UTC day.
func ParseDate(v string) (time.Time, error) {
	s := strings.TrimSpace(v)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return StartOfDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q: %w", v, err)
}

// StartOfDay returns midnight UTC of the day t falls on in UTC.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Days returns the fractional number of days from a to b.
func Days(a, b time.Time) float64 {
	return float64(b.Sub(a)) / float64(Day)
}

// AddDays offsets t by a fractional day count. The offset is rounded to the
// millisecond so float noise from pixel math cannot cross a day boundary.
func AddDays(t time.Time, days float64) time.Time {
	ms := math.Round(days * float64(Day/time.Millisecond))
	return t.Add(time.Duration(ms) * time.Millisecond)
}
