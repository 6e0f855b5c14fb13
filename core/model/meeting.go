package model

import "time"

// Meeting is one concrete scheduled instance of a committee type on a date.
type Meeting struct {
	ID              string    `json:"id"`
	CommitteeTypeID string    `json:"committee_type_id"`
	DivisionID      string    `json:"division_id"`
	Date            time.Time `json:"date"`

	// Operational mirrors the committee type's flag so load counts can be
	// scoped without a join.
	Operational bool `json:"operational,omitempty"`

	Status Status `json:"status,omitempty"`
}

// Event is a submission/agenda item attached to a meeting. It carries the
// expected and actual request volumes and the four deadlines derived from the
// meeting date.
type Event struct {
	ID        string `json:"id"`
	MeetingID string `json:"meeting_id"`
	Name      string `json:"name,omitempty"`

	ExpectedRequests int `json:"expected_requests"`
	ActualRequests   int `json:"actual_requests,omitempty"`

	Deadlines StageDeadlines `json:"deadlines"`

	// CallOverride marks the call deadline as supplied manually rather
	// than derived from the stage durations.
	CallOverride bool `json:"call_override,omitempty"`

	Status Status `json:"status,omitempty"`
}

// ExceptionDate is a concrete calendar date excluded from business-day
// counting. Recurring rules are not supported; a holiday repeating across
// years is stored as distinct dates.
type ExceptionDate struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label,omitempty"`
	Category string    `json:"category,omitempty"`
}
