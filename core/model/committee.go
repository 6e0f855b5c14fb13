package model

import "time"

// Frequency defines how often a committee type convenes.
type Frequency int

const (
	FrequencyWeekly Frequency = iota
	FrequencyMonthly
)

// String returns the configuration name of the frequency.
func (f Frequency) String() string {
	switch f {
	case FrequencyWeekly:
		return "weekly"
	case FrequencyMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// CommitteeType is a recurring meeting definition scoped to a division. Its
// weekday and frequency form the canonical pattern candidate dates are matched
// against when scoring.
type CommitteeType struct {
	ID         string `json:"id"`
	DivisionID string `json:"division_id"`
	Name       string `json:"name"`

	Weekday   time.Weekday `json:"weekday"`
	Frequency Frequency    `json:"frequency"`

	// WeekOfMonth pins a monthly committee to the n-th week window of the
	// month (1-5). Zero means any week of the month matches.
	WeekOfMonth int `json:"week_of_month,omitempty"`

	// Operational committees are counted separately by the daily cap when
	// the caller scopes the count.
	Operational bool `json:"operational,omitempty"`

	Status Status `json:"status,omitempty"`
}
