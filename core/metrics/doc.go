package metrics

// Package metrics defines the Sink interface for recording scheduling events.
// Implementations live under infra/metrics: PromSink and InfluxSink record
// checks, recommendations and deadline computations and can be combined with
// NewMultiSink. A collector helper feeds the sinks from the internal event
// bus.
