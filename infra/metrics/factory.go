package metrics

import (
	coremetrics "github.com/taldata/izun-sub001/core/metrics"
)

// New builds the configured sink set: none enabled yields a NopSink, one
// enabled yields that sink, several are combined with NewMultiSink.
func New(cfg coremetrics.Config) (coremetrics.Sink, error) {
	var sinks []coremetrics.Sink
	if cfg.Prometheus.Enabled {
		prom, err := NewPromSink()
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, prom)
	}
	if cfg.Influx.Enabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg.Influx.URL, cfg.Influx.Token, cfg.Influx.Org, cfg.Influx.Bucket))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
