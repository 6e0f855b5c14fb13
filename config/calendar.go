package config

import (
	"fmt"
	"time"

	"github.com/taldata/izun-sub001/core/calendar"
	"github.com/taldata/izun-sub001/core/model"
)

// CalendarConfig defines the working week and how week windows are anchored.
type CalendarConfig struct {
	// WorkDays are weekday indices 0-6 (Sunday = 0) on which business is
	// conducted.
	WorkDays []int `json:"work_days"`
	// WeekStartsOn is the weekday index anchoring week windows.
	WeekStartsOn int `json:"week_starts_on"`
}

// SetDefaults applies the Sunday-Thursday work week.
func (c *CalendarConfig) SetDefaults() {
	if len(c.WorkDays) == 0 {
		c.WorkDays = []int{0, 1, 2, 3, 4}
	}
}

// Validate checks weekday ranges.
func (c CalendarConfig) Validate() error {
	if _, err := model.ParseWeekdays(c.WorkDays); err != nil {
		return fmt.Errorf("work_days: %w", err)
	}
	if c.WeekStartsOn < 0 || c.WeekStartsOn > 6 {
		return fmt.Errorf("week_starts_on %d out of range 0-6", c.WeekStartsOn)
	}
	return nil
}

// WorkWeek converts the configured indices into a calendar work week.
func (c CalendarConfig) WorkWeek() (calendar.WorkWeek, error) {
	days, err := model.ParseWeekdays(c.WorkDays)
	if err != nil {
		return calendar.WorkWeek{}, err
	}
	return calendar.NewWorkWeek(days...), nil
}

// FirstWeekday returns the configured week anchor.
func (c CalendarConfig) FirstWeekday() time.Weekday {
	return time.Weekday(c.WeekStartsOn)
}
