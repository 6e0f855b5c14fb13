// Package store persists the scheduling dataset: divisions, committee types,
// routes, meetings, events and exception dates. Two backends exist, a single
// JSON file and a SQLite database, selected by config. The engine reads a full
// dataset per scheduling request; writes are limited to seeding.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/taldata/izun-sub001/core/model"
)

// ErrNotFound is returned when a lookup id resolves to nothing.
var ErrNotFound = errors.New("store: not found")

// Dataset is the full scheduling reference data.
type Dataset struct {
	Divisions      []model.Division      `json:"divisions"`
	CommitteeTypes []model.CommitteeType `json:"committee_types"`
	Routes         []model.Route         `json:"routes"`
	Meetings       []model.Meeting       `json:"meetings"`
	Events         []model.Event         `json:"events"`
	Exceptions     []model.ExceptionDate `json:"exception_dates"`
}

// Division resolves a division by id, deleted ones included.
func (d Dataset) Division(id string) (model.Division, error) {
	for _, dv := range d.Divisions {
		if dv.ID == id {
			return dv, nil
		}
	}
	return model.Division{}, fmt.Errorf("division %s: %w", id, ErrNotFound)
}

// CommitteeType resolves a committee type by id.
func (d Dataset) CommitteeType(id string) (model.CommitteeType, error) {
	for _, ct := range d.CommitteeTypes {
		if ct.ID == id {
			return ct, nil
		}
	}
	return model.CommitteeType{}, fmt.Errorf("committee type %s: %w", id, ErrNotFound)
}

// Route resolves a route by id.
func (d Dataset) Route(id string) (model.Route, error) {
	for _, r := range d.Routes {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Route{}, fmt.Errorf("route %s: %w", id, ErrNotFound)
}

// Store supplies and seeds the scheduling dataset.
type Store interface {
	// Load reads the complete dataset. One Load per scheduling request
	// gives the caller a consistent snapshot.
	Load(ctx context.Context) (Dataset, error)

	// Seed replaces the stored dataset wholesale.
	Seed(ctx context.Context, ds Dataset) error

	Close() error
}

// Config selects the dataset backend.
type Config struct {
	// Backend selects the store type: "json" or "sqlite".
	Backend string `json:"backend"`
	// Path is the file location of the dataset.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "json"
	}
	if c.Path == "" {
		c.Path = "izun.json"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Backend != "json" && c.Backend != "sqlite" {
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// New builds the configured store backend.
func New(cfg Config) (Store, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	default:
		return NewJSONStore(cfg.Path)
	}
}
