package scoring

import (
	"testing"
	"time"

	"github.com/taldata/izun-sub001/core/calendar"
	"github.com/taldata/izun-sub001/core/constraint"
	"github.com/taldata/izun-sub001/core/load"
	"github.com/taldata/izun-sub001/core/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func scorer(t *testing.T, meetings []model.Meeting, events []model.Event) Scorer {
	t.Helper()
	cal, err := calendar.New(calendar.DefaultWorkWeek(), nil)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	var limits constraint.Limits
	limits.SetDefaults()
	return Scorer{
		Checker: constraint.Checker{
			Cal:    cal,
			Loads:  load.NewSnapshot(meetings, events),
			Limits: limits,
		},
		Weights: DefaultWeights(),
	}
}

func baseRequest() Request {
	return Request{
		Division:  model.Division{ID: "d1"},
		Committee: model.CommitteeType{ID: "ct1", DivisionID: "d1", Weekday: time.Monday},
		Today:     date(2026, 1, 5), // Monday
	}
}

func hasReason(c ScoredCandidate, reason string) bool {
	for _, a := range c.Adjustments {
		if a.Reason == reason {
			return true
		}
	}
	return false
}

func TestRankDefaults(t *testing.T) {
	// A fresh week ten days out beats the same candidate ninety days out
	// and beats a candidate whose week already sits at its cap.
	s := scorer(t, nil, nil)
	req := baseRequest()
	r, err := s.Rank(req, []time.Time{date(2026, 4, 5), date(2026, 1, 15)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(r.Candidates) != 2 {
		t.Fatalf("expected 2 candidates got %d", len(r.Candidates))
	}
	near, far := r.Candidates[0], r.Candidates[1]
	if !near.Date.Equal(date(2026, 1, 15)) {
		t.Fatalf("expected near candidate first, got %v", near.Date)
	}
	if near.Score <= far.Score {
		t.Fatalf("near %.0f should beat far %.0f", near.Score, far.Score)
	}
	if !hasReason(far, ReasonFarFuture) {
		t.Fatalf("far candidate missing far_future: %+v", far.Adjustments)
	}
	if !hasReason(near, ReasonOptimalRange) || !hasReason(near, ReasonNoEvents) {
		t.Fatalf("near candidate missing bonuses: %+v", near.Adjustments)
	}

	// Same date, but its third-week window (Jan 11-17) already holds four
	// meetings: the cap leaves no headroom.
	full := scorer(t, []model.Meeting{
		{ID: "m1", CommitteeTypeID: "x1", DivisionID: "d1", Date: date(2026, 1, 11)},
		{ID: "m2", CommitteeTypeID: "x2", DivisionID: "d1", Date: date(2026, 1, 12)},
		{ID: "m3", CommitteeTypeID: "x3", DivisionID: "d1", Date: date(2026, 1, 13)},
		{ID: "m4", CommitteeTypeID: "x4", DivisionID: "d1", Date: date(2026, 1, 14)},
	}, nil)
	rf, err := full.Rank(req, []time.Time{date(2026, 1, 15)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(rf.Candidates) != 1 {
		t.Fatalf("expected 1 candidate got %d", len(rf.Candidates))
	}
	atCap := rf.Candidates[0]
	if near.Score <= atCap.Score {
		t.Fatalf("fresh week %.0f should beat capped week %.0f", near.Score, atCap.Score)
	}
	if !hasReason(atCap, ReasonNoSpace) {
		t.Fatalf("capped candidate missing no_space: %+v", atCap.Adjustments)
	}
}

func TestRankWeekFullPenalty(t *testing.T) {
	// Three meetings in the third-week window: adding the candidate reaches
	// the cap of four exactly.
	s := scorer(t, []model.Meeting{
		{ID: "m1", CommitteeTypeID: "x1", DivisionID: "d1", Date: date(2026, 1, 11)},
		{ID: "m2", CommitteeTypeID: "x2", DivisionID: "d1", Date: date(2026, 1, 12)},
		{ID: "m3", CommitteeTypeID: "x3", DivisionID: "d1", Date: date(2026, 1, 13)},
	}, nil)
	r, err := s.Rank(baseRequest(), []time.Time{date(2026, 1, 15)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	c := r.Candidates[0]
	if !hasReason(c, ReasonWeekFull) {
		t.Fatalf("expected week_full: %+v", c.Adjustments)
	}
	if !hasReason(c, ReasonSpace) {
		t.Fatalf("one remaining slot still earns space: %+v", c.Adjustments)
	}
}

func TestRankHardFilters(t *testing.T) {
	s := scorer(t, nil, nil)
	req := baseRequest()
	req.Division.AllowedWeekdays = []time.Weekday{time.Thursday}
	r, err := s.Rank(req, []time.Time{
		date(2026, 1, 16), // Friday, not a working day
		date(2026, 1, 12), // Monday, blocked by the division
		date(2026, 1, 15), // Thursday, survives
	})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(r.Candidates) != 1 || !r.Candidates[0].Date.Equal(date(2026, 1, 15)) {
		t.Fatalf("expected only the thursday candidate, got %+v", r.Candidates)
	}
}

func TestRankBestDay(t *testing.T) {
	s := scorer(t, nil, nil)
	req := baseRequest()
	req.Committee.Weekday = time.Thursday
	r, err := s.Rank(req, []time.Time{date(2026, 1, 14), date(2026, 1, 15)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if !r.Candidates[0].Date.Equal(date(2026, 1, 15)) {
		t.Fatalf("expected thursday ranked first, got %v", r.Candidates[0].Date)
	}
	if !hasReason(r.Candidates[0], ReasonBestDay) {
		t.Fatalf("thursday missing best_day: %+v", r.Candidates[0].Adjustments)
	}
	if hasReason(r.Candidates[1], ReasonBestDay) {
		t.Fatalf("wednesday should not earn best_day")
	}

	// Monthly committees also match on the week of the month.
	req.Committee.Frequency = model.FrequencyMonthly
	req.Committee.WeekOfMonth = 3
	r, err = s.Rank(req, []time.Time{date(2026, 1, 8), date(2026, 1, 15)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	for _, c := range r.Candidates {
		want := c.Date.Equal(date(2026, 1, 15)) // third week
		if hasReason(c, ReasonBestDay) != want {
			t.Fatalf("best_day mismatch on %v: %+v", c.Date, c.Adjustments)
		}
	}
}

func TestRankSLASignals(t *testing.T) {
	// A committed event's review deadline sits on 2026-01-08 with volume
	// 95; the candidate's own review deadline lands on the same date.
	events := []model.Event{
		{ID: "e1", MeetingID: "m9", ExpectedRequests: 95,
			Deadlines: model.StageDeadlines{Review: date(2026, 1, 8)}},
	}
	meetings := []model.Meeting{
		{ID: "m9", CommitteeTypeID: "x9", DivisionID: "d1", Date: date(2026, 2, 2)},
	}
	s := scorer(t, meetings, events)
	req := baseRequest()
	req.Stages = model.StageDurations{Review: 5}

	req.ExpectedRequests = 10 // projected 105, over the cap
	r, err := s.Rank(req, []time.Time{date(2026, 1, 15)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	c := r.Candidates[0]
	if !hasReason(c, ReasonNoSLA) {
		t.Fatalf("expected no_sla: %+v", c.Adjustments)
	}

	req.ExpectedRequests = 5 // projected exactly 100
	r, err = s.Rank(req, []time.Time{date(2026, 1, 15)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	c = r.Candidates[0]
	if !hasReason(c, ReasonSLA) || !hasReason(c, ReasonTightSLA) {
		t.Fatalf("expected sla with tight_sla: %+v", c.Adjustments)
	}
}

func TestRankLoadPenalties(t *testing.T) {
	// Two meetings and an event in the week of Jan 18-24 put the count
	// above half the weekly cap.
	meetings := []model.Meeting{
		{ID: "m1", CommitteeTypeID: "x1", DivisionID: "d1", Date: date(2026, 1, 18)},
		{ID: "m2", CommitteeTypeID: "x2", DivisionID: "d1", Date: date(2026, 1, 19)},
	}
	events := []model.Event{
		{ID: "e1", MeetingID: "m1", ExpectedRequests: 5},
	}
	s := scorer(t, meetings, events)
	req := baseRequest()
	req.Committee.Weekday = time.Wednesday
	r, err := s.Rank(req, []time.Time{date(2026, 1, 20)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if !hasReason(r.Candidates[0], ReasonHighLoad) {
		t.Fatalf("expected high_load: %+v", r.Candidates[0].Adjustments)
	}

	// With a single meeting the count stays at or below the midpoint.
	s = scorer(t, meetings[:1], events)
	r, err = s.Rank(req, []time.Time{date(2026, 1, 20)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if !hasReason(r.Candidates[0], ReasonMediumLoad) {
		t.Fatalf("expected medium_load: %+v", r.Candidates[0].Adjustments)
	}
}

func TestRankStableTieBreak(t *testing.T) {
	s := scorer(t, nil, nil)
	req := baseRequest()
	req.Committee.Weekday = time.Saturday // never matches a working day
	req.Today = date(2026, 1, 11)
	// Passed in reverse order; identical scores must come back date
	// ascending.
	r, err := s.Rank(req, []time.Time{date(2026, 1, 13), date(2026, 1, 12)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(r.Candidates) != 2 {
		t.Fatalf("expected 2 candidates got %d", len(r.Candidates))
	}
	if r.Candidates[0].Score != r.Candidates[1].Score {
		t.Fatalf("expected identical scores, got %.0f vs %.0f", r.Candidates[0].Score, r.Candidates[1].Score)
	}
	if !r.Candidates[0].Date.Equal(date(2026, 1, 12)) {
		t.Fatalf("tie should break on earlier date, got %v first", r.Candidates[0].Date)
	}
}

func TestRankRemovalKeepsOrder(t *testing.T) {
	s := scorer(t, nil, nil)
	req := baseRequest()
	req.Committee.Weekday = time.Thursday
	all := []time.Time{date(2026, 4, 5), date(2026, 1, 15), date(2026, 1, 14)}
	r, err := s.Rank(req, all)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(r.Candidates) != 3 {
		t.Fatalf("expected 3 candidates got %d", len(r.Candidates))
	}
	// Drop the middle-ranked date and re-rank.
	middle := r.Candidates[1].Date
	var rest []time.Time
	for _, d := range all {
		if !d.Equal(middle) {
			rest = append(rest, d)
		}
	}
	r2, err := s.Rank(req, rest)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if !r2.Candidates[0].Date.Equal(r.Candidates[0].Date) || !r2.Candidates[1].Date.Equal(r.Candidates[2].Date) {
		t.Fatalf("relative order changed: %+v", r2.Candidates)
	}
}

func TestRankingStatsAndTop(t *testing.T) {
	s := scorer(t, nil, nil)
	req := baseRequest()
	req.Committee.Weekday = time.Thursday
	r, err := s.Rank(req, []time.Time{date(2026, 1, 15), date(2026, 1, 14), date(2026, 4, 5)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if r.Mean != 150 || r.StdDev != 25 {
		t.Fatalf("unexpected stats mean=%.2f std=%.2f", r.Mean, r.StdDev)
	}
	if top := r.Top(2); len(top) != 2 || !top[0].Date.Equal(date(2026, 1, 15)) {
		t.Fatalf("unexpected top-2 %+v", top)
	}
	if top := r.Top(10); len(top) != 3 {
		t.Fatalf("expected all candidates, got %d", len(top))
	}
}

func TestRankScoreIsAdjustmentSum(t *testing.T) {
	s := scorer(t, nil, nil)
	r, err := s.Rank(baseRequest(), []time.Time{date(2026, 1, 15)})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	c := r.Candidates[0]
	sum := 0.0
	for _, a := range c.Adjustments {
		sum += a.Delta
	}
	if sum != c.Score {
		t.Fatalf("score %.2f does not match adjustment sum %.2f", c.Score, sum)
	}
}
