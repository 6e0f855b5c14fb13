package model

import "time"

// Status is the lifecycle state of a record: active, or soft-deleted with the
// deletion timestamp. It replaces the usual int-flag/nullable-timestamp pair so
// "deleted" is a single unambiguous condition.
type Status struct {
	Deleted   bool      `json:"deleted,omitempty"`
	DeletedAt time.Time `json:"deleted_at,omitempty"`
}

// Active returns an active Status.
func Active() Status { return Status{} }

// Deleted returns a deleted Status stamped at t.
func Deleted(t time.Time) Status {
	return Status{Deleted: true, DeletedAt: t}
}

// IsActive reports whether the record counts for scheduling purposes.
func (s Status) IsActive() bool { return !s.Deleted }
