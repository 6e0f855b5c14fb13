package load

import (
	"errors"
	"testing"
	"time"

	"github.com/taldata/izun-sub001/core/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSnapshot() *Snapshot {
	meetings := []model.Meeting{
		{ID: "m1", CommitteeTypeID: "ct1", DivisionID: "d1", Date: date(2026, 1, 15), Operational: true},
		{ID: "m2", CommitteeTypeID: "ct2", DivisionID: "d1", Date: date(2026, 1, 15)},
		{ID: "m3", CommitteeTypeID: "ct1", DivisionID: "d1", Date: date(2026, 1, 18), Operational: true},
		{ID: "m4", CommitteeTypeID: "ct1", DivisionID: "d2", Date: date(2026, 1, 15),
			Status: model.Deleted(date(2026, 1, 2))},
	}
	events := []model.Event{
		{ID: "e1", MeetingID: "m1", ExpectedRequests: 40,
			Deadlines: model.StageDeadlines{Intake: date(2026, 1, 5), Review: date(2026, 1, 12)}},
		{ID: "e2", MeetingID: "m2", ExpectedRequests: 30,
			Deadlines: model.StageDeadlines{Intake: date(2026, 1, 5)}},
		{ID: "e3", MeetingID: "m4", ExpectedRequests: 99,
			Deadlines: model.StageDeadlines{Intake: date(2026, 1, 5)}},
		{ID: "e4", MeetingID: "m3", ExpectedRequests: 25, Status: model.Deleted(date(2026, 1, 3))},
	}
	return NewSnapshot(meetings, events)
}

func TestMeetingCount(t *testing.T) {
	s := testSnapshot()
	n, err := s.MeetingCount(CountQuery{From: date(2026, 1, 15), To: date(2026, 1, 15)})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 { // m4 is deleted
		t.Fatalf("expected 2 got %d", n)
	}
	n, err = s.MeetingCount(CountQuery{From: date(2026, 1, 11), To: date(2026, 1, 18), Scope: ScopeOperational})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 { // m1 and m3
		t.Fatalf("expected 2 operational got %d", n)
	}
	n, err = s.MeetingCount(CountQuery{From: date(2026, 1, 15), To: date(2026, 1, 15), Scope: ScopeNonOperational})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 { // m2
		t.Fatalf("expected 1 non-operational got %d", n)
	}
	n, err = s.MeetingCount(CountQuery{From: date(2026, 1, 15), To: date(2026, 1, 18), ExcludeMeetingID: "m1"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 after exclusion got %d", n)
	}
}

func TestMeetingCountUnknownScope(t *testing.T) {
	s := testSnapshot()
	if _, err := s.MeetingCount(CountQuery{From: date(2026, 1, 1), To: date(2026, 1, 31), Scope: Scope(42)}); !errors.Is(err, ErrUnknownScope) {
		t.Fatalf("expected ErrUnknownScope got %v", err)
	}
}

func TestHasMeeting(t *testing.T) {
	s := testSnapshot()
	ok, err := s.HasMeeting("ct1", "d1", date(2026, 1, 15), "")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if !ok {
		t.Fatalf("expected duplicate for ct1/d1")
	}
	// Excluding the meeting being edited clears the duplicate.
	ok, err = s.HasMeeting("ct1", "d1", date(2026, 1, 15), "m1")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if ok {
		t.Fatalf("expected no duplicate after exclusion")
	}
	// A deleted meeting does not count as a duplicate.
	ok, err = s.HasMeeting("ct1", "d2", date(2026, 1, 15), "")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if ok {
		t.Fatalf("deleted meeting should not be a duplicate")
	}
}

func TestRequestVolumeByMeetingDate(t *testing.T) {
	s := testSnapshot()
	n, err := s.RequestVolume(VolumeQuery{Date: date(2026, 1, 15), Kind: KindMeeting})
	if err != nil {
		t.Fatalf("volume: %v", err)
	}
	if n != 70 { // e1 + e2; e3's meeting is deleted
		t.Fatalf("expected 70 got %d", n)
	}
	n, err = s.RequestVolume(VolumeQuery{Date: date(2026, 1, 15), Kind: KindMeeting, ExcludeEventID: "e2"})
	if err != nil {
		t.Fatalf("volume: %v", err)
	}
	if n != 40 {
		t.Fatalf("expected 40 after exclusion got %d", n)
	}
}

func TestRequestVolumeByDeadline(t *testing.T) {
	s := testSnapshot()
	n, err := s.RequestVolume(VolumeQuery{Date: date(2026, 1, 5), Kind: KindIntake})
	if err != nil {
		t.Fatalf("volume: %v", err)
	}
	if n != 70 { // e3 is attached to a deleted meeting
		t.Fatalf("expected 70 got %d", n)
	}
	n, err = s.RequestVolume(VolumeQuery{Date: date(2026, 1, 12), Kind: KindReview})
	if err != nil {
		t.Fatalf("volume: %v", err)
	}
	if n != 40 {
		t.Fatalf("expected 40 got %d", n)
	}
}

func TestRequestVolumeUnknownKind(t *testing.T) {
	s := testSnapshot()
	if _, err := s.RequestVolume(VolumeQuery{Date: date(2026, 1, 5), Kind: DateKind("fancy")}); !errors.Is(err, ErrUnknownDateKind) {
		t.Fatalf("expected ErrUnknownDateKind got %v", err)
	}
}

func TestEventCount(t *testing.T) {
	s := testSnapshot()
	n, err := s.EventCount(date(2026, 1, 11), date(2026, 1, 17), "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 { // e1 and e2; e3's meeting is deleted, e4 is deleted
		t.Fatalf("expected 2 got %d", n)
	}
	n, err = s.EventCount(date(2026, 1, 11), date(2026, 1, 17), "e1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 after exclusion got %d", n)
	}
	n, err = s.EventCount(date(2026, 2, 1), date(2026, 2, 7), "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty window got %d", n)
	}
}

func TestDateKindValid(t *testing.T) {
	for _, k := range []DateKind{KindMeeting, KindCall, KindIntake, KindReview, KindResponse} {
		if !k.Valid() {
			t.Fatalf("%s should be valid", k)
		}
	}
	if DateKind("").Valid() {
		t.Fatalf("empty kind should be invalid")
	}
}
