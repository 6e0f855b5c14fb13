package model

import (
	"fmt"
	"time"
)

// Division is an organizational unit owning committees, routes and day-of-week
// scheduling constraints.
type Division struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// AllowedWeekdays restricts the days this division may hold meetings.
	// An empty set means all days are allowed. The set is replaced as a
	// whole on update; there is no partial mutation.
	AllowedWeekdays []time.Weekday `json:"allowed_weekdays,omitempty"`

	Status Status `json:"status,omitempty"`
}

// AllowsWeekday reports whether the division may meet on day d.
func (dv Division) AllowsWeekday(d time.Weekday) bool {
	if len(dv.AllowedWeekdays) == 0 {
		return true
	}
	for _, w := range dv.AllowedWeekdays {
		if w == d {
			return true
		}
	}
	return false
}

// ParseWeekdays converts raw weekday indices into time.Weekday values,
// rejecting anything outside 0-6 before any state is touched.
func ParseWeekdays(indices []int) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i > 6 {
			return nil, fmt.Errorf("weekday index %d out of range 0-6", i)
		}
		days = append(days, time.Weekday(i))
	}
	return days, nil
}
