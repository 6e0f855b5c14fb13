package metrics

import "fmt"

// Config defines settings for metrics sinks.
type Config struct {
	Prometheus PromConfig   `json:"prometheus"`
	Influx     InfluxConfig `json:"influx"`
}

// PromConfig enables the Prometheus sink and its scrape endpoint.
type PromConfig struct {
	Enabled bool `json:"enabled"`
	// Addr is the listen address of the /metrics endpoint.
	Addr string `json:"addr"`
}

// InfluxConfig enables the InfluxDB sink.
type InfluxConfig struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
	Token   string `json:"token"`
	Org     string `json:"org"`
	Bucket  string `json:"bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Prometheus.Addr == "" {
		c.Prometheus.Addr = ":2112"
	}
}

// Validate checks mandatory fields of enabled sinks.
func (c Config) Validate() error {
	if c.Prometheus.Enabled && c.Prometheus.Addr == "" {
		return fmt.Errorf("prometheus addr is required")
	}
	if c.Influx.Enabled {
		if c.Influx.URL == "" {
			return fmt.Errorf("influx url is required")
		}
		if c.Influx.Org == "" || c.Influx.Bucket == "" {
			return fmt.Errorf("influx org and bucket are required")
		}
	}
	return nil
}
