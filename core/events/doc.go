// Package events defines the scheduling events emitted on the event bus.
//
// Available event types:
//   - CheckEvent: one candidate validation result
//   - RecommendationEvent: one ranking run summary
//   - DeadlineEvent: one stage-deadline computation
package events
