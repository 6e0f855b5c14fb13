package events

import (
	"time"

	"github.com/taldata/izun-sub001/core/constraint"
)

// CheckEvent is published after each candidate validation.
type CheckEvent struct {
	DivisionID      string
	CommitteeTypeID string
	Date            time.Time
	Result          constraint.Result
}
