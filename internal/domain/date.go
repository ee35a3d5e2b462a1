package domain

import (
	"fmt"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// InstantFormat is the wire format of absolute instants sent to the external
// API: UTC with millisecond precision, e.g. "2025-06-05T23:59:59.999Z".
const InstantFormat = "2006-01-02T15:04:05.000Z"

// CalendarDate is a date without time-of-day or timezone, written as
// "yyyy-MM-dd". The embedded time is always midnight UTC so two dates naming
// the same day compare equal with ==.
// The zero value means "not set".
type CalendarDate struct {
	openapi_types.Date
}

// NewCalendarDate returns the calendar date y-m-d. Out-of-range values are
// normalized the way time.Date normalizes them.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{openapi_types.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}}
}

// CalendarDateOf returns the calendar date of t as seen in t's own location.
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return NewCalendarDate(y, m, d)
}

// ParseCalendarDate parses a strict "yyyy-MM-dd" string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(openapi_types.DateFormat, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("domain.ParseCalendarDate: %q: %w", s, err)
	}
	return CalendarDateOf(t), nil
}

// String formats the date as "yyyy-MM-dd", or "" for the zero value.
func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format(openapi_types.DateFormat)
}

// IsZero reports whether the date is unset.
func (d CalendarDate) IsZero() bool {
	return d.Time.IsZero()
}

// After reports whether d is a later calendar day than o.
func (d CalendarDate) After(o CalendarDate) bool {
	return d.Time.After(o.Time)
}

// Before reports whether d is an earlier calendar day than o.
func (d CalendarDate) Before(o CalendarDate) bool {
	return d.Time.Before(o.Time)
}

// StartOfDay returns the first instant of d in loc.
func (d CalendarDate) StartOfDay(loc *time.Location) time.Time {
	y, m, day := d.Time.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

// EndOfDay returns the last millisecond of d in loc.
func (d CalendarDate) EndOfDay(loc *time.Location) time.Time {
	y, m, day := d.Time.Date()
	return time.Date(y, m, day, 23, 59, 59, int(999*time.Millisecond), loc)
}

// Display formats the date for people, e.g. "Jun 01, 2025".
func (d CalendarDate) Display() string {
	return d.Time.Format("Jan 02, 2006")
}

// FormatInstant renders t in InstantFormat after converting it to UTC.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantFormat)
}
