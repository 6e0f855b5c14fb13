package metrics

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/taldata/izun-sub001/core/constraint"
	"github.com/taldata/izun-sub001/core/events"
	coremetrics "github.com/taldata/izun-sub001/core/metrics"
	"github.com/taldata/izun-sub001/internal/eventbus"
)

type countingSink struct {
	checks          atomic.Int32
	recommendations atomic.Int32
	deadlines       atomic.Int32
}

func (s *countingSink) RecordCheck(coremetrics.CheckEvent) error {
	s.checks.Add(1)
	return nil
}

func (s *countingSink) RecordRecommendation(coremetrics.RecommendationEvent) error {
	s.recommendations.Add(1)
	return nil
}

func (s *countingSink) RecordDeadlines(coremetrics.DeadlineEvent) error {
	s.deadlines.Add(1)
	return nil
}

func TestEventCollector(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	sink := &countingSink{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartEventCollector(ctx, bus, sink)

	bus.Publish(events.CheckEvent{
		DivisionID: "d1",
		Date:       time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		Result:     constraint.Result{WorkingDay: true, DivisionDay: true},
	})
	bus.Publish(events.RecommendationEvent{DivisionID: "d1", Candidates: 2, TopScore: 150})
	bus.Publish(events.DeadlineEvent{RouteID: "r1"})
	bus.Publish("not a scheduling event")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sink.checks.Load() == 1 && sink.recommendations.Load() == 1 && sink.deadlines.Load() == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("events not collected: checks=%d recommendations=%d deadlines=%d",
		sink.checks.Load(), sink.recommendations.Load(), sink.deadlines.Load())
}

func TestEventCollectorStopsOnCancel(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	sink := &countingSink{}
	ctx, cancel := context.WithCancel(context.Background())
	StartEventCollector(ctx, bus, sink)
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if bus.SubscriberCount() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("collector did not unsubscribe after cancel")
}

func TestEventCollectorNilArgs(t *testing.T) {
	StartEventCollector(context.Background(), nil, nil)
	StartEventCollector(context.Background(), eventbus.New(), nil)
}
