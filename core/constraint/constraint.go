// Package constraint validates candidate meeting dates against the calendar,
// division weekday rules and the configured load caps. Every check is
// independent and side-effect-free; the full result is returned so callers can
// tell a hard rejection from a soft, scorable signal.
package constraint

import (
	"fmt"
	"time"

	"github.com/taldata/izun-sub001/core/calendar"
	"github.com/taldata/izun-sub001/core/load"
	"github.com/taldata/izun-sub001/core/model"
)

// Limits defines the operational caps applied during candidate checks.
type Limits struct {
	// MaxMeetingsPerDay caps active meetings sharing one date.
	MaxMeetingsPerDay int `json:"max_meetings_per_day"`
	// MaxWeeklyMeetings caps active meetings inside one week window.
	MaxWeeklyMeetings int `json:"max_weekly_meetings"`
	// MaxThirdWeekMeetings replaces the weekly cap for dates falling in the
	// third week of the month.
	MaxThirdWeekMeetings int `json:"max_third_week_meetings"`
	// MaxRequestsPerDate caps aggregate expected request volume on one date.
	MaxRequestsPerDate int `json:"max_requests_per_date"`
	// SLADaysBefore is the review-stage duration assumed for routes that
	// carry no stage configuration of their own.
	SLADaysBefore int `json:"sla_days_before"`
}

// SetDefaults applies the documented defaults.
func (l *Limits) SetDefaults() {
	if l.MaxMeetingsPerDay == 0 {
		l.MaxMeetingsPerDay = 1
	}
	if l.MaxWeeklyMeetings == 0 {
		l.MaxWeeklyMeetings = 3
	}
	if l.MaxThirdWeekMeetings == 0 {
		l.MaxThirdWeekMeetings = 4
	}
	if l.MaxRequestsPerDate == 0 {
		l.MaxRequestsPerDate = 100
	}
	if l.SLADaysBefore == 0 {
		l.SLADaysBefore = 14
	}
}

// Validate checks the caps are usable.
func (l Limits) Validate() error {
	if l.MaxMeetingsPerDay < 1 {
		return fmt.Errorf("max_meetings_per_day must be >= 1, got %d", l.MaxMeetingsPerDay)
	}
	if l.MaxWeeklyMeetings < 1 {
		return fmt.Errorf("max_weekly_meetings must be >= 1, got %d", l.MaxWeeklyMeetings)
	}
	if l.MaxThirdWeekMeetings < 1 {
		return fmt.Errorf("max_third_week_meetings must be >= 1, got %d", l.MaxThirdWeekMeetings)
	}
	if l.MaxRequestsPerDate < 1 {
		return fmt.Errorf("max_requests_per_date must be >= 1, got %d", l.MaxRequestsPerDate)
	}
	if l.SLADaysBefore < 0 {
		return fmt.Errorf("sla_days_before must not be negative, got %d", l.SLADaysBefore)
	}
	return nil
}

// Candidate is one proposed meeting slot under validation. It is ephemeral;
// nothing here is persisted by the checker.
type Candidate struct {
	Date      time.Time
	Division  model.Division
	Committee model.CommitteeType

	// ExpectedRequests is the candidate's own projected submission volume,
	// added on top of the committed volume for the date.
	ExpectedRequests int

	// Scope restricts meeting counts to operational or non-operational
	// committee types, per caller intent.
	Scope load.Scope

	// ExcludeMeetingID removes the meeting being rescheduled from its own
	// counts. ExcludeEventID does the same for volume aggregation.
	ExcludeMeetingID string
	ExcludeEventID   string
}

// Result records every check independently. A true field means that check
// passed. Counts are diagnostic and filled regardless of pass or fail.
type Result struct {
	WorkingDay  bool `json:"working_day"`
	DivisionDay bool `json:"division_day"`
	DailyCap    bool `json:"daily_cap"`
	WeeklyCap   bool `json:"weekly_cap"`
	NoDuplicate bool `json:"no_duplicate"`
	Volume      bool `json:"volume"`

	// ThirdWeek reports that the third-week cap was applied instead of the
	// ordinary weekly cap.
	ThirdWeek bool `json:"third_week"`

	// DayCount and WeekCount are the committed meeting counts for the
	// date and its (third-)week window. WeekCap is the cap that applied.
	DayCount  int `json:"day_count"`
	WeekCount int `json:"week_count"`
	WeekCap   int `json:"week_cap"`

	// ProjectedVolume includes the candidate's own expected requests.
	ProjectedVolume int `json:"projected_volume"`
}

// Passed reports whether every check passed.
func (r Result) Passed() bool {
	return r.WorkingDay && r.DivisionDay && r.DailyCap && r.WeeklyCap && r.NoDuplicate && r.Volume
}

// Failures lists the names of failed checks, matching the Result json keys.
func (r Result) Failures() []string {
	var out []string
	for _, c := range []struct {
		name string
		ok   bool
	}{
		{"working_day", r.WorkingDay},
		{"division_day", r.DivisionDay},
		{"daily_cap", r.DailyCap},
		{"weekly_cap", r.WeeklyCap},
		{"duplicate", r.NoDuplicate},
		{"volume", r.Volume},
	} {
		if !c.ok {
			out = append(out, c.name)
		}
	}
	return out
}

// Checker runs candidate validation against a calendar and a load snapshot.
type Checker struct {
	Cal    calendar.Calendar
	Loads  load.Reader
	Limits Limits

	// FirstWeekday anchors week windows. Zero value is Sunday.
	FirstWeekday time.Weekday
}

// Check validates a candidate and returns the full result. Identical inputs
// always produce identical results; the checker holds no state.
func (c Checker) Check(cand Candidate) (Result, error) {
	date := calendar.Midnight(cand.Date)
	res := Result{
		WorkingDay:  c.Cal.IsWorkingDay(date),
		DivisionDay: cand.Division.AllowsWeekday(date.Weekday()),
	}

	dayCount, err := c.Loads.MeetingCount(load.CountQuery{
		From:             date,
		To:               date,
		Scope:            cand.Scope,
		ExcludeMeetingID: cand.ExcludeMeetingID,
	})
	if err != nil {
		return Result{}, fmt.Errorf("daily meeting count: %w", err)
	}
	res.DayCount = dayCount
	res.DailyCap = dayCount < c.Limits.MaxMeetingsPerDay

	from, to := calendar.ThirdWeekWindow(date, c.FirstWeekday)
	weekCap := c.Limits.MaxThirdWeekMeetings
	if calendar.InWindow(date, from, to) {
		res.ThirdWeek = true
	} else {
		from, to = calendar.WeekWindow(date, c.FirstWeekday)
		weekCap = c.Limits.MaxWeeklyMeetings
	}
	weekCount, err := c.Loads.MeetingCount(load.CountQuery{
		From:             from,
		To:               to,
		Scope:            cand.Scope,
		ExcludeMeetingID: cand.ExcludeMeetingID,
	})
	if err != nil {
		return Result{}, fmt.Errorf("weekly meeting count: %w", err)
	}
	res.WeekCount = weekCount
	res.WeekCap = weekCap
	res.WeeklyCap = weekCount < weekCap

	dup, err := c.Loads.HasMeeting(cand.Committee.ID, cand.Division.ID, date, cand.ExcludeMeetingID)
	if err != nil {
		return Result{}, fmt.Errorf("duplicate lookup: %w", err)
	}
	res.NoDuplicate = !dup

	committed, err := c.Loads.RequestVolume(load.VolumeQuery{
		Date:           date,
		Kind:           load.KindMeeting,
		ExcludeEventID: cand.ExcludeEventID,
	})
	if err != nil {
		return Result{}, fmt.Errorf("request volume: %w", err)
	}
	res.ProjectedVolume = committed + cand.ExpectedRequests
	res.Volume = res.ProjectedVolume <= c.Limits.MaxRequestsPerDate

	return res, nil
}

// DeadlineLoad describes the projected request volume on one derived deadline
// date. Deadline volume caps are reported for diagnostics and scoring; the
// checker takes no scheduling decision on them.
type DeadlineLoad struct {
	Kind       load.DateKind `json:"kind"`
	Date       time.Time     `json:"date"`
	WorkingDay bool          `json:"working_day"`
	Projected  int           `json:"projected"`
	AtCap      bool          `json:"at_cap"`
	OverCap    bool          `json:"over_cap"`
}

// DeadlineLoads projects request volume onto each of the four deadline dates.
func (c Checker) DeadlineLoads(dl model.StageDeadlines, expected int, excludeEventID string) ([]DeadlineLoad, error) {
	dates := []struct {
		kind load.DateKind
		date time.Time
	}{
		{load.KindCall, dl.Call},
		{load.KindIntake, dl.Intake},
		{load.KindReview, dl.Review},
		{load.KindResponse, dl.Response},
	}
	out := make([]DeadlineLoad, 0, len(dates))
	for _, d := range dates {
		committed, err := c.Loads.RequestVolume(load.VolumeQuery{
			Date:           d.date,
			Kind:           d.kind,
			ExcludeEventID: excludeEventID,
		})
		if err != nil {
			return nil, fmt.Errorf("%s volume: %w", d.kind, err)
		}
		projected := committed + expected
		out = append(out, DeadlineLoad{
			Kind:       d.kind,
			Date:       d.date,
			WorkingDay: c.Cal.IsWorkingDay(d.date),
			Projected:  projected,
			AtCap:      projected == c.Limits.MaxRequestsPerDate,
			OverCap:    projected > c.Limits.MaxRequestsPerDate,
		})
	}
	return out, nil
}
