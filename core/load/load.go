// Package load defines the read-side contract between the scheduling core and
// whatever holds the committed meetings and events. The core consumes a
// consistent snapshot per request; it never writes.
package load

import (
	"errors"
	"time"
)

// ErrUnknownDateKind is returned when a volume query names a date kind the
// snapshot does not recognize. This is a configuration error and is surfaced
// instead of silently counting nothing.
var ErrUnknownDateKind = errors.New("load: unknown date kind")

// ErrUnknownScope is returned for a meeting-count scope outside the declared
// set.
var ErrUnknownScope = errors.New("load: unknown operational scope")

// DateKind selects which date of an event a volume query aggregates over:
// the parent meeting's date or one of the four derived deadlines.
type DateKind string

const (
	KindMeeting  DateKind = "meeting"
	KindCall     DateKind = "call"
	KindIntake   DateKind = "intake"
	KindReview   DateKind = "review"
	KindResponse DateKind = "response"
)

// Valid reports whether k is one of the declared kinds.
func (k DateKind) Valid() bool {
	switch k {
	case KindMeeting, KindCall, KindIntake, KindReview, KindResponse:
		return true
	}
	return false
}

// Scope filters meeting counts by the operational flag of the meeting.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeOperational
	ScopeNonOperational
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeOperational:
		return "operational"
	case ScopeNonOperational:
		return "non-operational"
	default:
		return "unknown"
	}
}

// CountQuery selects active meetings inside the inclusive [From, To] date
// window. ExcludeMeetingID removes the meeting being edited from its own
// count.
type CountQuery struct {
	From             time.Time
	To               time.Time
	Scope            Scope
	ExcludeMeetingID string
}

// VolumeQuery aggregates expected request volume of active events whose
// Kind-selected date equals Date. ExcludeEventID removes the event being
// edited from its own total.
type VolumeQuery struct {
	Date           time.Time
	Kind           DateKind
	ExcludeEventID string
}

// Reader is the snapshot view the scheduling core reads. Implementations must
// be consistent for the lifetime of one scheduling request; the core performs
// no locking of its own.
type Reader interface {
	// MeetingCount returns the number of active meetings matching q.
	MeetingCount(q CountQuery) (int, error)

	// HasMeeting reports whether an active meeting already exists for the
	// exact (committee type, division, date) triple, ignoring the meeting
	// named by excludeMeetingID.
	HasMeeting(committeeTypeID, divisionID string, date time.Time, excludeMeetingID string) (bool, error)

	// RequestVolume returns the aggregate expected request volume for q.
	RequestVolume(q VolumeQuery) (int, error)

	// EventCount returns the number of active events whose parent meeting
	// date falls inside the inclusive [from, to] window.
	EventCount(from, to time.Time, excludeEventID string) (int, error)
}
