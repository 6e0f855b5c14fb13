package announce

import (
	"context"
	"sync"
	"testing"
	"time"

	coreannounce "github.com/taldata/izun-sub001/core/announce"
	"github.com/taldata/izun-sub001/core/events"
	"github.com/taldata/izun-sub001/core/model"
	"github.com/taldata/izun-sub001/internal/eventbus"
)

type capturePublisher struct {
	mu              sync.Mutex
	recommendations []coreannounce.RecommendationNotice
	deadlines       []coreannounce.DeadlineNotice
}

func (c *capturePublisher) PublishRecommendation(n coreannounce.RecommendationNotice) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recommendations = append(c.recommendations, n)
	return nil
}

func (c *capturePublisher) PublishDeadlines(n coreannounce.DeadlineNotice) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadlines = append(c.deadlines, n)
	return nil
}

func (c *capturePublisher) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.recommendations), len(c.deadlines)
}

func TestAnnouncerForwardsEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	pub := &capturePublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartAnnouncer(ctx, bus, pub)

	top := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	bus.Publish(events.RecommendationEvent{
		DivisionID:      "d1",
		CommitteeTypeID: "ct1",
		Candidates:      3,
		TopDate:         top,
		TopScore:        150,
	})
	bus.Publish(events.DeadlineEvent{
		RouteID:     "r1",
		MeetingDate: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		Deadlines: model.StageDeadlines{
			Call:     time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC),
			Response: time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC),
		},
	})
	bus.Publish(events.CheckEvent{DivisionID: "ignored"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		recs, dls := pub.counts()
		if recs == 1 && dls == 1 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	recs, dls := pub.counts()
	if recs != 1 || dls != 1 {
		t.Fatalf("notices not delivered: recommendations=%d deadlines=%d", recs, dls)
	}

	pub.mu.Lock()
	defer pub.mu.Unlock()
	rn := pub.recommendations[0]
	if rn.DivisionID != "d1" || !rn.TopDate.Equal(top) || rn.TopScore != 150 {
		t.Errorf("recommendation notice: %+v", rn)
	}
	if rn.GeneratedAt.IsZero() {
		t.Errorf("generated_at not set")
	}
	dn := pub.deadlines[0]
	if dn.RouteID != "r1" || dn.Response.IsZero() {
		t.Errorf("deadline notice: %+v", dn)
	}
}

func TestAnnouncerStopsOnCancel(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	ctx, cancel := context.WithCancel(context.Background())
	StartAnnouncer(ctx, bus, &capturePublisher{})
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if bus.SubscriberCount() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("announcer did not unsubscribe after cancel")
}
