// Package announce defines the outbound notification boundary of the
// scheduling service. Implementations deliver notices to external consumers
// such as committee secretariats or case-management frontends.
package announce

import "time"

// RecommendationNotice summarizes one ranking run for downstream consumers.
type RecommendationNotice struct {
	NoticeID        string    `json:"notice_id"`
	DivisionID      string    `json:"division_id"`
	CommitteeTypeID string    `json:"committee_type_id"`
	TopDate         time.Time `json:"top_date"`
	TopScore        float64   `json:"top_score"`
	Candidates      int       `json:"candidates"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// DeadlineNotice carries the stage deadlines computed for one meeting.
type DeadlineNotice struct {
	NoticeID     string    `json:"notice_id"`
	RouteID      string    `json:"route_id"`
	MeetingDate  time.Time `json:"meeting_date"`
	Call         time.Time `json:"call"`
	Intake       time.Time `json:"intake"`
	Review       time.Time `json:"review"`
	Response     time.Time `json:"response"`
	CallOverride bool      `json:"call_override"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// Publisher delivers scheduling notices to external consumers.
type Publisher interface {
	// PublishRecommendation announces the outcome of a ranking run.
	PublishRecommendation(n RecommendationNotice) error

	// PublishDeadlines announces the stage deadlines computed for a meeting.
	PublishDeadlines(n DeadlineNotice) error
}

// NopPublisher discards all notices.
type NopPublisher struct{}

func (NopPublisher) PublishRecommendation(RecommendationNotice) error { return nil }
func (NopPublisher) PublishDeadlines(DeadlineNotice) error            { return nil }
