package metrics

import (
	"context"
	"time"

	"github.com/taldata/izun-sub001/core/events"
	coremetrics "github.com/taldata/izun-sub001/core/metrics"
	"github.com/taldata/izun-sub001/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// scheduling events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.Sink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.CheckEvent:
					_ = sink.RecordCheck(coremetrics.CheckEvent{
						DivisionID:      e.DivisionID,
						CommitteeTypeID: e.CommitteeTypeID,
						Date:            e.Date,
						Passed:          e.Result.Passed(),
						Failures:        e.Result.Failures(),
						ThirdWeek:       e.Result.ThirdWeek,
						Time:            time.Now(),
					})
				case events.RecommendationEvent:
					_ = sink.RecordRecommendation(coremetrics.RecommendationEvent{
						DivisionID:      e.DivisionID,
						CommitteeTypeID: e.CommitteeTypeID,
						Candidates:      e.Candidates,
						TopScore:        e.TopScore,
						MeanScore:       e.MeanScore,
						StdDev:          e.StdDev,
						Time:            time.Now(),
					})
				case events.DeadlineEvent:
					_ = sink.RecordDeadlines(coremetrics.DeadlineEvent{
						RouteID:      e.RouteID,
						MeetingDate:  e.MeetingDate,
						Deadlines:    e.Deadlines,
						CallOverride: e.CallOverride,
						Time:         time.Now(),
					})
				}
			}
		}
	}()
}
