package scoring

import "fmt"

// Weights holds every tunable scoring constant. Values are read from
// configuration; the scoring code itself carries no literals.
type Weights struct {
	// BaseScore is the starting score of every surviving candidate.
	BaseScore float64 `json:"base_score"`
	// BestBonus rewards a date matching the committee type's canonical
	// weekday and frequency pattern.
	BestBonus float64 `json:"best_bonus"`
	// SpaceBonus rewards strictly positive headroom under both the daily
	// and weekly caps; NoSpacePenalty applies otherwise.
	SpaceBonus     float64 `json:"space_bonus"`
	NoSpacePenalty float64 `json:"no_space_penalty"`
	// SLABonus rewards stage deadlines that all land on working days with
	// volume under the cap; NoSLAPenalty applies otherwise. TightSLAPenalty
	// is charged when any deadline lands exactly at the volume cap.
	SLABonus        float64 `json:"sla_bonus"`
	NoSLAPenalty    float64 `json:"no_sla_penalty"`
	TightSLAPenalty float64 `json:"tight_sla_penalty"`
	// OptimalRangeBonus rewards dates whose offset from today falls inside
	// [OptimalRangeStart, OptimalRangeEnd] days. FarFuturePenalty is
	// charged beyond FarFutureThreshold days.
	OptimalRangeBonus float64 `json:"optimal_range_bonus"`
	FarFuturePenalty  float64 `json:"far_future_penalty"`
	// NoEventsBonus rewards a week with no committed events. When events
	// exist, HighLoadPenalty or MediumLoadPenalty applies depending on
	// whether the week's meeting count exceeds half its cap.
	NoEventsBonus     float64 `json:"no_events_bonus"`
	HighLoadPenalty   float64 `json:"high_load_penalty"`
	MediumLoadPenalty float64 `json:"medium_load_penalty"`
	// WeekFullPenalty is charged when adding the candidate would exactly
	// reach the applicable weekly cap.
	WeekFullPenalty float64 `json:"week_full_penalty"`

	// Day offsets measured from today.
	OptimalRangeStart  int `json:"optimal_range_start"`
	OptimalRangeEnd    int `json:"optimal_range_end"`
	FarFutureThreshold int `json:"far_future_threshold"`
}

// DefaultWeights returns the documented default scoring constants.
func DefaultWeights() Weights {
	return Weights{
		BaseScore:          100,
		BestBonus:          25,
		SpaceBonus:         10,
		NoSpacePenalty:     50,
		SLABonus:           20,
		NoSLAPenalty:       30,
		TightSLAPenalty:    10,
		OptimalRangeBonus:  15,
		FarFuturePenalty:   10,
		NoEventsBonus:      5,
		HighLoadPenalty:    15,
		MediumLoadPenalty:  5,
		WeekFullPenalty:    20,
		OptimalRangeStart:  0,
		OptimalRangeEnd:    30,
		FarFutureThreshold: 60,
	}
}

// Validate checks the day offsets are coherent.
func (w Weights) Validate() error {
	if w.OptimalRangeStart > w.OptimalRangeEnd {
		return fmt.Errorf("optimal range start %d exceeds end %d", w.OptimalRangeStart, w.OptimalRangeEnd)
	}
	if w.FarFutureThreshold < 0 {
		return fmt.Errorf("far_future_threshold must not be negative, got %d", w.FarFutureThreshold)
	}
	return nil
}
