package model

import (
	"fmt"
	"time"
)

// StageDurations holds the four pipeline stage lengths of a route, in business
// days: call publication, intake, review and response. Values are independent;
// each must be >= 0.
type StageDurations struct {
	Call     int `json:"call"`
	Intake   int `json:"intake"`
	Review   int `json:"review"`
	Response int `json:"response"`
}

// Validate rejects negative stage durations.
func (d StageDurations) Validate() error {
	for _, s := range []struct {
		name string
		days int
	}{
		{"call", d.Call},
		{"intake", d.Intake},
		{"review", d.Review},
		{"response", d.Response},
	} {
		if s.days < 0 {
			return fmt.Errorf("stage %s duration must not be negative, got %d", s.name, s.days)
		}
	}
	return nil
}

// IsZero reports whether no stage carries a positive duration, i.e. the route
// has no pipeline configuration of its own.
func (d StageDurations) IsZero() bool {
	return d.Call == 0 && d.Intake == 0 && d.Review == 0 && d.Response == 0
}

// StageDeadlines are the four dates derived from a meeting date and a route's
// stage durations.
type StageDeadlines struct {
	Call     time.Time `json:"call"`
	Intake   time.Time `json:"intake"`
	Review   time.Time `json:"review"`
	Response time.Time `json:"response"`
}

// Route is a track within a division carrying its own stage-duration
// configuration.
type Route struct {
	ID         string         `json:"id"`
	DivisionID string         `json:"division_id"`
	Name       string         `json:"name"`
	Stages     StageDurations `json:"stages"`
	Status     Status         `json:"status,omitempty"`
}
