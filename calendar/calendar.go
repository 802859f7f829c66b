/*
Package calendar provides day-granularity date arithmetic for the leave engine.

PURPOSE:
  Everything in this system happens at the level of a calendar day: hire
  dates, leave spans, entitlement anniversaries. Date is a thin wrapper
  around time.Time normalized to midnight UTC so that comparisons and
  day counting never trip over time zones or DST.

KEY CONCEPTS IN THIS FILE:
  - Date: a single calendar day (no time-of-day component)
  - InclusiveDaySpan: calendar days in [start, end], both ends counted
  - BusinessDaySpan: non-weekend days in [start, end]
  - YearsBetween: whole-year tenure with floor semantics

SEE ALSO:
  - clock.go: injectable source of "today"
*/
package calendar

import (
	"fmt"
	"time"
)

// Layout is the wire and storage format for dates.
const Layout = "2006-01-02"

// =============================================================================
// DATE - A single calendar day
// =============================================================================

// Date is a calendar date normalized to midnight UTC.
// The zero value is the zero time; check with IsZero.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a time.Time to its calendar day.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Parse reads a Date in the 2006-01-02 layout.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// MustParse is Parse that panics on malformed input. Test helper.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

// Arithmetic
func (d Date) AddDays(n int) Date  { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddYears(n int) Date { return Date{t: d.t.AddDate(n, 0, 0)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// IsWeekend reports whether the date falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string {
	return d.t.Format(Layout)
}

// =============================================================================
// DAY SPANS
// =============================================================================

// InclusiveDaySpan returns the number of calendar days from start to end,
// counting both endpoints. InclusiveDaySpan(d, d) == 1.
// Undefined when end precedes start; callers validate date order first.
func InclusiveDaySpan(start, end Date) int {
	return int(end.t.Sub(start.t).Hours()/24) + 1
}

// BusinessDaySpan returns the number of non-weekend days in [start, end].
// This is the amount debited from a balance on approval: weekends inside a
// leave span are not charged even though they count toward the span itself.
func BusinessDaySpan(start, end Date) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if !d.IsWeekend() {
			count++
		}
	}
	return count
}

// YearsBetween returns the number of whole years from start to end with
// floor semantics: 364 days is 0 years, an exact anniversary is 1.
// The result is negative when end precedes start; callers that feed the
// result into an entitlement lookup must reject negative tenure first.
func YearsBetween(start, end Date) int {
	years := end.Year() - start.Year()
	anniversary := start.AddYears(years)
	if anniversary.After(end) {
		years--
	}
	return years
}
