// Package scoring ranks candidate meeting dates. Candidates failing the
// working-day or division-day checks are dropped outright; the rest are scored
// from configured weights and sorted by score descending, earliest date first
// on ties. Identical inputs always produce identical rankings.
package scoring

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/taldata/izun-sub001/core/calendar"
	"github.com/taldata/izun-sub001/core/constraint"
	"github.com/taldata/izun-sub001/core/load"
	"github.com/taldata/izun-sub001/core/model"
	"github.com/taldata/izun-sub001/core/pipeline"
)

// Adjustment reasons, stable across releases so downstream consumers can key
// on them.
const (
	ReasonBase         = "base"
	ReasonBestDay      = "best_day"
	ReasonSpace        = "space"
	ReasonNoSpace      = "no_space"
	ReasonSLA          = "sla"
	ReasonNoSLA        = "no_sla"
	ReasonTightSLA     = "tight_sla"
	ReasonOptimalRange = "optimal_range"
	ReasonFarFuture    = "far_future"
	ReasonNoEvents     = "no_events"
	ReasonHighLoad     = "high_load"
	ReasonMediumLoad   = "medium_load"
	ReasonWeekFull     = "week_full"
)

// Adjustment is one signed contribution to a candidate's score.
type Adjustment struct {
	Reason string  `json:"reason"`
	Delta  float64 `json:"delta"`
}

// Request carries everything needed to rank candidate dates for one committee
// type. Today is explicit so identical requests rank identically regardless of
// wall-clock time.
type Request struct {
	Division  model.Division
	Committee model.CommitteeType

	// Stages are the route's durations used for deadline projection. When
	// all zero, the review stage falls back to Limits.SLADaysBefore.
	Stages model.StageDurations

	ExpectedRequests int
	Today            time.Time
	Scope            load.Scope
	ExcludeMeetingID string
	ExcludeEventID   string
}

// ScoredCandidate is one ranked date with its full scoring breakdown and the
// underlying check diagnostics.
type ScoredCandidate struct {
	Date        time.Time            `json:"date"`
	Score       float64              `json:"score"`
	Adjustments []Adjustment         `json:"adjustments"`
	Checks      constraint.Result    `json:"checks"`
	Deadlines   model.StageDeadlines `json:"deadlines"`
}

// Ranking is an ordered candidate list with distribution stats over the
// scores, useful for telemetry and tuning.
type Ranking struct {
	Candidates []ScoredCandidate `json:"candidates"`
	Mean       float64           `json:"mean"`
	StdDev     float64           `json:"std_dev"`
}

// Top returns the first k candidates, or all of them when fewer exist.
func (r Ranking) Top(k int) []ScoredCandidate {
	if k < 0 || k > len(r.Candidates) {
		k = len(r.Candidates)
	}
	return r.Candidates[:k]
}

// Scorer ranks candidates using a constraint checker and configured weights.
type Scorer struct {
	Checker constraint.Checker
	Weights Weights
}

// Rank checks, scores and orders the given candidate dates.
func (s Scorer) Rank(req Request, dates []time.Time) (Ranking, error) {
	pipe := pipeline.Calculator{Cal: s.Checker.Cal}
	stages := req.Stages
	if stages.IsZero() {
		stages = model.StageDurations{Review: s.Checker.Limits.SLADaysBefore}
	}
	today := calendar.Midnight(req.Today)

	candidates := make([]ScoredCandidate, 0, len(dates))
	for _, d := range dates {
		date := calendar.Midnight(d)
		res, err := s.Checker.Check(constraint.Candidate{
			Date:             date,
			Division:         req.Division,
			Committee:        req.Committee,
			ExpectedRequests: req.ExpectedRequests,
			Scope:            req.Scope,
			ExcludeMeetingID: req.ExcludeMeetingID,
			ExcludeEventID:   req.ExcludeEventID,
		})
		if err != nil {
			return Ranking{}, fmt.Errorf("check %s: %w", date.Format("2006-01-02"), err)
		}
		if !res.WorkingDay || !res.DivisionDay {
			continue
		}
		sc, err := s.score(req, pipe, stages, today, date, res)
		if err != nil {
			return Ranking{}, err
		}
		candidates = append(candidates, sc)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Date.Before(candidates[j].Date)
	})

	r := Ranking{Candidates: candidates}
	if len(candidates) > 0 {
		scores := make([]float64, len(candidates))
		for i, c := range candidates {
			scores[i] = c.Score
		}
		r.Mean = stat.Mean(scores, nil)
		if len(scores) > 1 {
			r.StdDev = stat.StdDev(scores, nil)
		}
	}
	return r, nil
}

func (s Scorer) score(req Request, pipe pipeline.Calculator, stages model.StageDurations, today, date time.Time, res constraint.Result) (ScoredCandidate, error) {
	w := s.Weights
	adj := []Adjustment{{Reason: ReasonBase, Delta: w.BaseScore}}

	if bestDay(req.Committee, date) {
		adj = append(adj, Adjustment{Reason: ReasonBestDay, Delta: w.BestBonus})
	}

	dayRoom := s.Checker.Limits.MaxMeetingsPerDay - res.DayCount
	weekRoom := res.WeekCap - res.WeekCount
	if dayRoom > 0 && weekRoom > 0 {
		adj = append(adj, Adjustment{Reason: ReasonSpace, Delta: w.SpaceBonus})
	} else {
		adj = append(adj, Adjustment{Reason: ReasonNoSpace, Delta: -w.NoSpacePenalty})
	}

	dl, err := pipe.Deadlines(date, stages)
	if err != nil {
		return ScoredCandidate{}, fmt.Errorf("deadlines %s: %w", date.Format("2006-01-02"), err)
	}
	dloads, err := s.Checker.DeadlineLoads(dl, req.ExpectedRequests, req.ExcludeEventID)
	if err != nil {
		return ScoredCandidate{}, fmt.Errorf("deadline loads %s: %w", date.Format("2006-01-02"), err)
	}
	slaOK, slaTight := true, false
	for _, l := range dloads {
		if !l.WorkingDay || l.OverCap {
			slaOK = false
		}
		if l.AtCap {
			slaTight = true
		}
	}
	if slaOK {
		adj = append(adj, Adjustment{Reason: ReasonSLA, Delta: w.SLABonus})
	} else {
		adj = append(adj, Adjustment{Reason: ReasonNoSLA, Delta: -w.NoSLAPenalty})
	}
	if slaTight {
		adj = append(adj, Adjustment{Reason: ReasonTightSLA, Delta: -w.TightSLAPenalty})
	}

	offset := int(date.Sub(today).Hours() / 24)
	if offset >= w.OptimalRangeStart && offset <= w.OptimalRangeEnd {
		adj = append(adj, Adjustment{Reason: ReasonOptimalRange, Delta: w.OptimalRangeBonus})
	}
	if offset > w.FarFutureThreshold {
		adj = append(adj, Adjustment{Reason: ReasonFarFuture, Delta: -w.FarFuturePenalty})
	}

	weekFrom, weekTo := calendar.WeekWindow(date, s.Checker.FirstWeekday)
	events, err := s.Checker.Loads.EventCount(weekFrom, weekTo, req.ExcludeEventID)
	if err != nil {
		return ScoredCandidate{}, fmt.Errorf("event count %s: %w", date.Format("2006-01-02"), err)
	}
	if events == 0 {
		adj = append(adj, Adjustment{Reason: ReasonNoEvents, Delta: w.NoEventsBonus})
	} else if float64(res.WeekCount) > float64(res.WeekCap)/2 {
		adj = append(adj, Adjustment{Reason: ReasonHighLoad, Delta: -w.HighLoadPenalty})
	} else {
		adj = append(adj, Adjustment{Reason: ReasonMediumLoad, Delta: -w.MediumLoadPenalty})
	}

	if res.WeekCount+1 == res.WeekCap {
		adj = append(adj, Adjustment{Reason: ReasonWeekFull, Delta: -w.WeekFullPenalty})
	}

	score := 0.0
	for _, a := range adj {
		score += a.Delta
	}
	return ScoredCandidate{
		Date:        date,
		Score:       score,
		Adjustments: adj,
		Checks:      res,
		Deadlines:   dl,
	}, nil
}

// bestDay reports whether the date matches the committee type's canonical
// pattern: the scheduled weekday, plus the scheduled week of the month for
// monthly committees (zero meaning any week).
func bestDay(ct model.CommitteeType, date time.Time) bool {
	if date.Weekday() != ct.Weekday {
		return false
	}
	if ct.Frequency == model.FrequencyMonthly && ct.WeekOfMonth != 0 {
		return calendar.WeekOfMonth(date) == ct.WeekOfMonth
	}
	return true
}
