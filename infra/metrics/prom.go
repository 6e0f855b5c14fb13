package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/taldata/izun-sub001/core/metrics"
)

// PromSink records scheduling events in Prometheus metrics.
type PromSink struct {
	checks    *prometheus.CounterVec
	failures  *prometheus.CounterVec
	runs      *prometheus.CounterVec
	topScore  *prometheus.HistogramVec
	deadlines *prometheus.CounterVec
}

// NewPromSink registers scheduling metrics on the default Prometheus
// registerer. The scrape endpoint is served separately via StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	checks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_checks_total",
		Help: "Total number of candidate checks",
	}, []string{"division_id", "passed"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_check_failures_total",
		Help: "Failed checks by check name",
	}, []string{"check"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendation_runs_total",
		Help: "Total number of ranking runs",
	}, []string{"division_id"})
	topScore := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommendation_top_score",
		Help:    "Top candidate score per ranking run",
		Buckets: prometheus.LinearBuckets(0, 25, 11),
	}, []string{"division_id"})
	deadlines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deadline_computations_total",
		Help: "Total number of stage-deadline computations",
	}, []string{"call_override"})

	if err := reg.Register(checks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			checks = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(failures); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			failures = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(topScore); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			topScore = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(deadlines); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			deadlines = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		checks:    checks,
		failures:  failures,
		runs:      runs,
		topScore:  topScore,
		deadlines: deadlines,
	}, nil
}

// RecordCheck increments the check counters.
func (s *PromSink) RecordCheck(ev coremetrics.CheckEvent) error {
	s.checks.WithLabelValues(ev.DivisionID, strconv.FormatBool(ev.Passed)).Inc()
	for _, f := range ev.Failures {
		s.failures.WithLabelValues(f).Inc()
	}
	return nil
}

// RecordRecommendation counts the run and observes the top score.
func (s *PromSink) RecordRecommendation(ev coremetrics.RecommendationEvent) error {
	s.runs.WithLabelValues(ev.DivisionID).Inc()
	if ev.Candidates > 0 {
		s.topScore.WithLabelValues(ev.DivisionID).Observe(ev.TopScore)
	}
	return nil
}

// RecordDeadlines counts deadline computations.
func (s *PromSink) RecordDeadlines(ev coremetrics.DeadlineEvent) error {
	s.deadlines.WithLabelValues(strconv.FormatBool(ev.CallOverride)).Inc()
	return nil
}
