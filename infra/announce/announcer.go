package announce

import (
	"context"
	"time"

	coreannounce "github.com/taldata/izun-sub001/core/announce"
	"github.com/taldata/izun-sub001/core/events"
	"github.com/taldata/izun-sub001/infra/logger"
	"github.com/taldata/izun-sub001/internal/eventbus"
)

// StartAnnouncer subscribes to the event bus and forwards ranking and
// deadline events as notices. It stops when the context is canceled.
func StartAnnouncer(ctx context.Context, bus eventbus.EventBus, pub coreannounce.Publisher) {
	if bus == nil || pub == nil {
		return
	}
	log := logger.New("announcer")
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
				case events.RecommendationEvent:
					n := coreannounce.RecommendationNotice{
						DivisionID:      e.DivisionID,
						CommitteeTypeID: e.CommitteeTypeID,
						TopDate:         e.TopDate,
						TopScore:        e.TopScore,
						Candidates:      e.Candidates,
						GeneratedAt:     time.Now().UTC(),
					}
					if err := pub.PublishRecommendation(n); err != nil {
						log.Errorf("publish recommendation: %v", err)
					}
				case events.DeadlineEvent:
					n := coreannounce.DeadlineNotice{
						RouteID:      e.RouteID,
						MeetingDate:  e.MeetingDate,
						Call:         e.Deadlines.Call,
						Intake:       e.Deadlines.Intake,
						Review:       e.Deadlines.Review,
						Response:     e.Deadlines.Response,
						CallOverride: e.CallOverride,
						GeneratedAt:  time.Now().UTC(),
					}
					if err := pub.PublishDeadlines(n); err != nil {
						log.Errorf("publish deadlines: %v", err)
					}
				}
			}
		}
	}()
}
