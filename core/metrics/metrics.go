package metrics

import (
	"time"

	"github.com/taldata/izun-sub001/core/model"
)

// CheckEvent represents one candidate validation to be recorded.
type CheckEvent struct {
	DivisionID      string
	CommitteeTypeID string
	Date            time.Time
	Passed          bool
	Failures        []string
	ThirdWeek       bool
	Time            time.Time
}

// RecommendationEvent summarizes one ranking run.
type RecommendationEvent struct {
	DivisionID      string
	CommitteeTypeID string
	Candidates      int
	TopScore        float64
	MeanScore       float64
	StdDev          float64
	Time            time.Time
}

// DeadlineEvent represents one stage-deadline computation.
type DeadlineEvent struct {
	RouteID      string
	MeetingDate  time.Time
	Deadlines    model.StageDeadlines
	CallOverride bool
	Time         time.Time
}

// Sink records scheduling events for observability purposes.
type Sink interface {
	RecordCheck(ev CheckEvent) error
	RecordRecommendation(ev RecommendationEvent) error
	RecordDeadlines(ev DeadlineEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordCheck(CheckEvent) error                   { return nil }
func (NopSink) RecordRecommendation(RecommendationEvent) error { return nil }
func (NopSink) RecordDeadlines(DeadlineEvent) error            { return nil }
