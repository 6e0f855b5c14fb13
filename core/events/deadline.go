package events

import (
	"time"

	"github.com/taldata/izun-sub001/core/model"
)

// DeadlineEvent is published after each stage-deadline computation.
type DeadlineEvent struct {
	RouteID      string
	MeetingDate  time.Time
	Deadlines    model.StageDeadlines
	CallOverride bool
}
