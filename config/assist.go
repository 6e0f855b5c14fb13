package config

import "fmt"

// AssistConfig drives the periodic auto-scheduling assistant.
type AssistConfig struct {
	// IntervalMinutes is the pause between assistant passes.
	IntervalMinutes int `json:"interval_minutes"`
	// HorizonDays bounds how far ahead candidate dates are generated.
	HorizonDays int `json:"horizon_days"`
	// TopK is the number of leading candidates carried in each notice.
	TopK int `json:"top_k"`
}

// SetDefaults applies sane defaults.
func (c *AssistConfig) SetDefaults() {
	if c.IntervalMinutes == 0 {
		c.IntervalMinutes = 60
	}
	if c.HorizonDays == 0 {
		c.HorizonDays = 60
	}
	if c.TopK == 0 {
		c.TopK = 5
	}
}

// Validate checks value ranges.
func (c AssistConfig) Validate() error {
	if c.IntervalMinutes <= 0 {
		return fmt.Errorf("interval_minutes must be positive, got %d", c.IntervalMinutes)
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("horizon_days must be positive, got %d", c.HorizonDays)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	return nil
}
