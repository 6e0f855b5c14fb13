// Package calendar implements the business calendar: which dates count as
// working days and date arithmetic expressed in business days. All functions
// are pure; dates are treated as date-only values normalized to midnight UTC.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoWorkingDays is returned when the work week defines no working day at
// all. Business-day arithmetic would never terminate under such a
// configuration, so it is rejected before any stepping.
var ErrNoWorkingDays = errors.New("calendar: work week has no working days")

// ExceptionLookup reports whether the given date (midnight UTC) is excluded
// from business-day counting. A nil lookup means no exceptions.
type ExceptionLookup func(date time.Time) bool

// ExceptionSet builds an ExceptionLookup from a fixed list of dates.
func ExceptionSet(dates ...time.Time) ExceptionLookup {
	set := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		set[Midnight(d)] = struct{}{}
	}
	return func(d time.Time) bool {
		_, ok := set[Midnight(d)]
		return ok
	}
}

// WorkWeek is the set of weekdays on which business is conducted.
type WorkWeek struct {
	days [7]bool
}

// NewWorkWeek builds a WorkWeek from the given weekdays. Duplicates are
// harmless.
func NewWorkWeek(days ...time.Weekday) WorkWeek {
	var w WorkWeek
	for _, d := range days {
		w.days[int(d)%7] = true
	}
	return w
}

// DefaultWorkWeek is Sunday through Thursday.
func DefaultWorkWeek() WorkWeek {
	return NewWorkWeek(time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday)
}

// Contains reports whether d is a working weekday.
func (w WorkWeek) Contains(d time.Weekday) bool { return w.days[int(d)%7] }

// IsEmpty reports whether no weekday is marked working.
func (w WorkWeek) IsEmpty() bool {
	for _, ok := range w.days {
		if ok {
			return false
		}
	}
	return true
}

// Days returns the working weekdays in Sunday-first order.
func (w WorkWeek) Days() []time.Weekday {
	var out []time.Weekday
	for i, ok := range w.days {
		if ok {
			out = append(out, time.Weekday(i))
		}
	}
	return out
}

// Calendar decides working days from a work week and an exception lookup.
type Calendar struct {
	week WorkWeek
	exc  ExceptionLookup
}

// New validates the work week and returns a Calendar. An empty work week is a
// configuration error.
func New(week WorkWeek, exc ExceptionLookup) (Calendar, error) {
	if week.IsEmpty() {
		return Calendar{}, ErrNoWorkingDays
	}
	return Calendar{week: week, exc: exc}, nil
}

// WorkWeek returns the calendar's working weekday set.
func (c Calendar) WorkWeek() WorkWeek { return c.week }

// IsWorkingDay reports whether d is within the work week and not an exception.
func (c Calendar) IsWorkingDay(d time.Time) bool {
	d = Midnight(d)
	if !c.week.Contains(d.Weekday()) {
		return false
	}
	if c.exc != nil && c.exc(d) {
		return false
	}
	return true
}

// AddBusinessDays returns the date n working days after d. Steps are taken one
// calendar day at a time and counted only when they land on a working day, so
// the result is itself a working day for n >= 1. n == 0 returns d unchanged.
func (c Calendar) AddBusinessDays(d time.Time, n int) (time.Time, error) {
	return c.step(d, n, 1)
}

// SubBusinessDays returns the date n working days before d, stepping backward.
func (c Calendar) SubBusinessDays(d time.Time, n int) (time.Time, error) {
	return c.step(d, n, -1)
}

func (c Calendar) step(d time.Time, n, dir int) (time.Time, error) {
	if c.week.IsEmpty() {
		return time.Time{}, ErrNoWorkingDays
	}
	if n < 0 {
		return time.Time{}, fmt.Errorf("calendar: business-day count must not be negative, got %d", n)
	}
	cur := Midnight(d)
	for counted := 0; counted < n; {
		cur = cur.AddDate(0, 0, dir)
		if c.IsWorkingDay(cur) {
			counted++
		}
	}
	return cur, nil
}

// Midnight normalizes t to its date at midnight UTC. The calendar performs
// date-only math; wall-clock components and zones are dropped.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool { return Midnight(a).Equal(Midnight(b)) }
