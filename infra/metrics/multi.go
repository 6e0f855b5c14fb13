package metrics

import coremetrics "github.com/taldata/izun-sub001/core/metrics"

// MultiSink fans scheduling events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordCheck forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordCheck(ev coremetrics.CheckEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordCheck(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordRecommendation forwards the event to all sinks.
func (m *MultiSink) RecordRecommendation(ev coremetrics.RecommendationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRecommendation(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordDeadlines forwards the event to all sinks.
func (m *MultiSink) RecordDeadlines(ev coremetrics.DeadlineEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordDeadlines(ev); err != nil {
			return err
		}
	}
	return nil
}
