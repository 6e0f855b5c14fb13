package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taldata/izun-sub001/core/calendar"
	"github.com/taldata/izun-sub001/core/model"
	"github.com/taldata/izun-sub001/core/pipeline"
	"github.com/taldata/izun-sub001/infra/store"
)

// DemoDataset builds a small working dataset anchored at now: two divisions
// with weekday restrictions, routes with distinct stage durations, weekly and
// monthly committee types and a few upcoming meetings carrying events.
func DemoDataset(now time.Time) (store.Dataset, error) {
	today := calendar.Midnight(now)

	planning := model.Division{
		ID:              uuid.NewString(),
		Name:            "Planning and Infrastructure",
		AllowedWeekdays: []time.Weekday{time.Sunday, time.Tuesday, time.Thursday},
	}
	licensing := model.Division{
		ID:              uuid.NewString(),
		Name:            "Licensing",
		AllowedWeekdays: []time.Weekday{time.Monday, time.Wednesday},
	}

	fullRoute := model.Route{
		ID:         uuid.NewString(),
		DivisionID: planning.ID,
		Name:       "Full review",
		Stages:     model.StageDurations{Call: 14, Intake: 21, Review: 10, Response: 10},
	}
	fastRoute := model.Route{
		ID:         uuid.NewString(),
		DivisionID: planning.ID,
		Name:       "Fast track",
		Stages:     model.StageDurations{Call: 7, Intake: 10, Review: 5, Response: 5},
	}
	permitRoute := model.Route{
		ID:         uuid.NewString(),
		DivisionID: licensing.ID,
		Name:       "Permits",
		Stages:     model.StageDurations{Call: 10, Intake: 14, Review: 7, Response: 7},
	}

	weeklyPlanning := model.CommitteeType{
		ID:          uuid.NewString(),
		DivisionID:  planning.ID,
		Name:        "Subcommittee for planning",
		Weekday:     time.Tuesday,
		Frequency:   model.FrequencyWeekly,
		Operational: true,
	}
	monthlyPlanning := model.CommitteeType{
		ID:          uuid.NewString(),
		DivisionID:  planning.ID,
		Name:        "Plenary planning committee",
		Weekday:     time.Thursday,
		Frequency:   model.FrequencyMonthly,
		WeekOfMonth: 3,
	}
	weeklyLicensing := model.CommitteeType{
		ID:         uuid.NewString(),
		DivisionID: licensing.ID,
		Name:       "Licensing board",
		Weekday:    time.Monday,
		Frequency:  model.FrequencyWeekly,
	}

	exceptions := []model.ExceptionDate{
		{Date: today.AddDate(0, 0, 20), Label: "Office closure", Category: "holiday"},
		{Date: today.AddDate(0, 0, 45), Label: "National holiday", Category: "holiday"},
	}
	exDates := make([]time.Time, len(exceptions))
	for i, ex := range exceptions {
		exDates[i] = ex.Date
	}
	cal, err := calendar.New(calendar.DefaultWorkWeek(), calendar.ExceptionSet(exDates...))
	if err != nil {
		return store.Dataset{}, err
	}
	calc := pipeline.Calculator{Cal: cal}

	type slot struct {
		ct       model.CommitteeType
		date     time.Time
		route    model.Route
		expected int
	}
	slots := []slot{
		{weeklyPlanning, nextWeekday(today, time.Tuesday), fullRoute, 35},
		{weeklyPlanning, nextWeekday(today, time.Tuesday).AddDate(0, 0, 7), fastRoute, 20},
		{weeklyLicensing, nextWeekday(today, time.Monday), permitRoute, 50},
		{monthlyPlanning, thirdWeekday(today.AddDate(0, 1, 0), time.Thursday), fullRoute, 60},
	}

	ds := store.Dataset{
		Divisions:      []model.Division{planning, licensing},
		CommitteeTypes: []model.CommitteeType{weeklyPlanning, monthlyPlanning, weeklyLicensing},
		Routes:         []model.Route{fullRoute, fastRoute, permitRoute},
		Exceptions:     exceptions,
	}

	for _, sl := range slots {
		m := model.Meeting{
			ID:              uuid.NewString(),
			CommitteeTypeID: sl.ct.ID,
			DivisionID:      sl.ct.DivisionID,
			Date:            sl.date,
			Operational:     sl.ct.Operational,
		}
		dl, err := calc.Deadlines(m.Date, sl.route.Stages)
		if err != nil {
			return store.Dataset{}, fmt.Errorf("deadlines for %s: %w", sl.ct.Name, err)
		}
		ds.Meetings = append(ds.Meetings, m)
		ds.Events = append(ds.Events, model.Event{
			ID:               uuid.NewString(),
			MeetingID:        m.ID,
			Name:             fmt.Sprintf("%s agenda", sl.ct.Name),
			ExpectedRequests: sl.expected,
			Deadlines:        dl,
		})
	}
	return ds, nil
}

// nextWeekday returns the first date strictly after from falling on wd.
func nextWeekday(from time.Time, wd time.Weekday) time.Time {
	d := from.AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// thirdWeekday returns the date in d's month falling on wd with a day ordinal
// in the third week, i.e. day 15 to 21.
func thirdWeekday(d time.Time, wd time.Weekday) time.Time {
	cur := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	for cur.Weekday() != wd {
		cur = cur.AddDate(0, 0, 1)
	}
	return cur.AddDate(0, 0, 14)
}
