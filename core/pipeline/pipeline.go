// Package pipeline derives the four stage deadlines of a submission pipeline
// from a meeting date and per-stage durations measured in business days.
package pipeline

import (
	"fmt"
	"time"

	"github.com/taldata/izun-sub001/core/calendar"
	"github.com/taldata/izun-sub001/core/model"
)

// Calculator computes stage deadlines against a business calendar. It holds no
// mutable state; methods are pure and safe for concurrent use.
type Calculator struct {
	Cal calendar.Calendar
}

// Deadlines derives all four deadlines from the meeting date. Each deadline is
// anchored on the previously derived one, not independently on the meeting
// date, so a calendar exception before the review deadline shifts every
// earlier deadline with it:
//
//	response = meeting + Response business days
//	review   = meeting - Review business days
//	intake   = review  - Intake business days
//	call     = intake  - Call business days
func (c Calculator) Deadlines(meetingDate time.Time, stages model.StageDurations) (model.StageDeadlines, error) {
	dl, err := c.partial(meetingDate, stages)
	if err != nil {
		return model.StageDeadlines{}, err
	}
	call, err := c.Cal.SubBusinessDays(dl.Intake, stages.Call)
	if err != nil {
		return model.StageDeadlines{}, fmt.Errorf("call deadline: %w", err)
	}
	dl.Call = call
	return dl, nil
}

// DeadlinesWithCall derives the intake, review and response deadlines as
// Deadlines does, but takes the call deadline verbatim from the caller. Used
// when an event carries a manual call-publication override; the override is
// not required to precede the intake deadline.
func (c Calculator) DeadlinesWithCall(meetingDate time.Time, stages model.StageDurations, call time.Time) (model.StageDeadlines, error) {
	dl, err := c.partial(meetingDate, stages)
	if err != nil {
		return model.StageDeadlines{}, err
	}
	dl.Call = calendar.Midnight(call)
	return dl, nil
}

func (c Calculator) partial(meetingDate time.Time, stages model.StageDurations) (model.StageDeadlines, error) {
	if err := stages.Validate(); err != nil {
		return model.StageDeadlines{}, err
	}
	meetingDate = calendar.Midnight(meetingDate)

	response, err := c.Cal.AddBusinessDays(meetingDate, stages.Response)
	if err != nil {
		return model.StageDeadlines{}, fmt.Errorf("response deadline: %w", err)
	}
	review, err := c.Cal.SubBusinessDays(meetingDate, stages.Review)
	if err != nil {
		return model.StageDeadlines{}, fmt.Errorf("review deadline: %w", err)
	}
	intake, err := c.Cal.SubBusinessDays(review, stages.Intake)
	if err != nil {
		return model.StageDeadlines{}, fmt.Errorf("intake deadline: %w", err)
	}
	return model.StageDeadlines{
		Intake:   intake,
		Review:   review,
		Response: response,
	}, nil
}
