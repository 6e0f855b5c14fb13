package events

import "time"

// RecommendationEvent is published after each ranking run.
type RecommendationEvent struct {
	DivisionID      string
	CommitteeTypeID string

	// Candidates is the number of dates that survived the hard filters.
	Candidates int
	TopDate    time.Time
	TopScore   float64
	MeanScore  float64
	StdDev     float64
}
