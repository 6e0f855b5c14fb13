package load

import (
	"time"

	"github.com/taldata/izun-sub001/core/calendar"
	"github.com/taldata/izun-sub001/core/model"
)

// Snapshot is an immutable in-memory Reader over a fixed set of meetings and
// events, typically materialized from the store once per scheduling request.
type Snapshot struct {
	meetings  []model.Meeting
	events    []model.Event
	meetingBy map[string]model.Meeting
}

// NewSnapshot indexes the given records. The slices are not copied; callers
// must not mutate them afterwards.
func NewSnapshot(meetings []model.Meeting, events []model.Event) *Snapshot {
	byID := make(map[string]model.Meeting, len(meetings))
	for _, m := range meetings {
		byID[m.ID] = m
	}
	return &Snapshot{meetings: meetings, events: events, meetingBy: byID}
}

// MeetingCount implements Reader.
func (s *Snapshot) MeetingCount(q CountQuery) (int, error) {
	from, to := calendar.Midnight(q.From), calendar.Midnight(q.To)
	count := 0
	for _, m := range s.meetings {
		if !m.Status.IsActive() || m.ID == q.ExcludeMeetingID {
			continue
		}
		if !calendar.InWindow(m.Date, from, to) {
			continue
		}
		switch q.Scope {
		case ScopeAll:
		case ScopeOperational:
			if !m.Operational {
				continue
			}
		case ScopeNonOperational:
			if m.Operational {
				continue
			}
		default:
			return 0, ErrUnknownScope
		}
		count++
	}
	return count, nil
}

// HasMeeting implements Reader.
func (s *Snapshot) HasMeeting(committeeTypeID, divisionID string, date time.Time, excludeMeetingID string) (bool, error) {
	date = calendar.Midnight(date)
	for _, m := range s.meetings {
		if !m.Status.IsActive() || m.ID == excludeMeetingID {
			continue
		}
		if m.CommitteeTypeID == committeeTypeID && m.DivisionID == divisionID && calendar.SameDate(m.Date, date) {
			return true, nil
		}
	}
	return false, nil
}

// RequestVolume implements Reader.
func (s *Snapshot) RequestVolume(q VolumeQuery) (int, error) {
	if !q.Kind.Valid() {
		return 0, ErrUnknownDateKind
	}
	date := calendar.Midnight(q.Date)
	total := 0
	for _, e := range s.events {
		if !e.Status.IsActive() || e.ID == q.ExcludeEventID {
			continue
		}
		d, ok := s.eventDate(e, q.Kind)
		if !ok || !calendar.SameDate(d, date) {
			continue
		}
		total += e.ExpectedRequests
	}
	return total, nil
}

// EventCount implements Reader.
func (s *Snapshot) EventCount(from, to time.Time, excludeEventID string) (int, error) {
	from, to = calendar.Midnight(from), calendar.Midnight(to)
	count := 0
	for _, e := range s.events {
		if !e.Status.IsActive() || e.ID == excludeEventID {
			continue
		}
		d, ok := s.eventDate(e, KindMeeting)
		if !ok || !calendar.InWindow(d, from, to) {
			continue
		}
		count++
	}
	return count, nil
}

// eventDate resolves the Kind-selected date of an event. For the meeting kind
// the parent meeting must exist and be active; events orphaned by a deleted
// meeting carry no load.
func (s *Snapshot) eventDate(e model.Event, kind DateKind) (time.Time, bool) {
	if m, ok := s.meetingBy[e.MeetingID]; ok && !m.Status.IsActive() {
		return time.Time{}, false
	}
	switch kind {
	case KindMeeting:
		m, ok := s.meetingBy[e.MeetingID]
		if !ok {
			return time.Time{}, false
		}
		return m.Date, true
	case KindCall:
		return e.Deadlines.Call, true
	case KindIntake:
		return e.Deadlines.Intake, true
	case KindReview:
		return e.Deadlines.Review, true
	case KindResponse:
		return e.Deadlines.Response, true
	}
	return time.Time{}, false
}
