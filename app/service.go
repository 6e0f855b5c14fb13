// Package app wires the scheduling engine to its collaborators: the dataset
// store, the business calendar, metric sinks and the notice publisher. All
// I/O lives here; the core packages stay pure and receive one consistent
// snapshot per operation.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/taldata/izun-sub001/config"
	coreannounce "github.com/taldata/izun-sub001/core/announce"
	"github.com/taldata/izun-sub001/core/calendar"
	"github.com/taldata/izun-sub001/core/constraint"
	"github.com/taldata/izun-sub001/core/events"
	"github.com/taldata/izun-sub001/core/load"
	"github.com/taldata/izun-sub001/core/model"
	"github.com/taldata/izun-sub001/core/pipeline"
	"github.com/taldata/izun-sub001/core/scoring"
	"github.com/taldata/izun-sub001/infra/announce"
	"github.com/taldata/izun-sub001/infra/logger"
	"github.com/taldata/izun-sub001/infra/metrics"
	"github.com/taldata/izun-sub001/infra/store"
	"github.com/taldata/izun-sub001/internal/eventbus"
)

// Service orchestrates the scheduling engine and its collaborators.
type Service struct {
	cfg *config.Config

	store store.Store
	bus   eventbus.EventBus
	pub   coreannounce.Publisher
	log   logger.Logger

	closers []func() error
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	st, err := store.New(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	pub, err := announce.New(cfg.Announce)
	if err != nil {
		return nil, fmt.Errorf("announce publisher: %w", err)
	}

	svc := &Service{
		cfg:   cfg,
		store: st,
		bus:   eventbus.New(),
		pub:   pub,
		log:   logg,
	}
	svc.closers = append(svc.closers, st.Close)
	if pp, ok := pub.(*announce.PahoPublisher); ok {
		svc.closers = append(svc.closers, func() error { pp.Disconnect(); return nil })
	}
	return svc, nil
}

// engine is one consistent view of the dataset with the pure components built
// on top of it.
type engine struct {
	ds      store.Dataset
	cal     calendar.Calendar
	checker constraint.Checker
}

func (s *Service) engine(ctx context.Context) (engine, error) {
	ds, err := s.store.Load(ctx)
	if err != nil {
		return engine{}, fmt.Errorf("load dataset: %w", err)
	}
	ww, err := s.cfg.Calendar.WorkWeek()
	if err != nil {
		return engine{}, fmt.Errorf("work week: %w", err)
	}
	dates := make([]time.Time, len(ds.Exceptions))
	for i, ex := range ds.Exceptions {
		dates[i] = ex.Date
	}
	cal, err := calendar.New(ww, calendar.ExceptionSet(dates...))
	if err != nil {
		return engine{}, err
	}
	checker := constraint.Checker{
		Cal:          cal,
		Loads:        load.NewSnapshot(ds.Meetings, ds.Events),
		Limits:       s.cfg.Limits,
		FirstWeekday: s.cfg.Calendar.FirstWeekday(),
	}
	return engine{ds: ds, cal: cal, checker: checker}, nil
}

// stagesOrFallback substitutes the configured SLA review duration when the
// route carries no stage configuration of its own.
func (s *Service) stagesOrFallback(stages model.StageDurations) model.StageDurations {
	if stages.IsZero() {
		return model.StageDurations{Review: s.cfg.Limits.SLADaysBefore}
	}
	return stages
}

// Deadlines computes the stage deadlines for a meeting of the given route. A
// non-zero call value overrides the derived call-publication deadline.
func (s *Service) Deadlines(ctx context.Context, routeID string, meetingDate, call time.Time) (model.StageDeadlines, error) {
	eng, err := s.engine(ctx)
	if err != nil {
		return model.StageDeadlines{}, err
	}
	route, err := eng.ds.Route(routeID)
	if err != nil {
		return model.StageDeadlines{}, err
	}
	calc := pipeline.Calculator{Cal: eng.cal}
	stages := s.stagesOrFallback(route.Stages)

	var dl model.StageDeadlines
	override := !call.IsZero()
	if override {
		dl, err = calc.DeadlinesWithCall(meetingDate, stages, call)
	} else {
		dl, err = calc.Deadlines(meetingDate, stages)
	}
	if err != nil {
		return model.StageDeadlines{}, fmt.Errorf("route %s: %w", routeID, err)
	}

	s.bus.Publish(events.DeadlineEvent{
		RouteID:      routeID,
		MeetingDate:  calendar.Midnight(meetingDate),
		Deadlines:    dl,
		CallOverride: override,
	})
	return dl, nil
}

// Check validates one candidate slot for the committee type. The daily count
// is scoped to the committee's operational class.
func (s *Service) Check(ctx context.Context, divisionID, committeeTypeID string, date time.Time, expectedRequests int, excludeMeetingID string) (constraint.Result, error) {
	eng, err := s.engine(ctx)
	if err != nil {
		return constraint.Result{}, err
	}
	div, err := eng.ds.Division(divisionID)
	if err != nil {
		return constraint.Result{}, err
	}
	ct, err := eng.ds.CommitteeType(committeeTypeID)
	if err != nil {
		return constraint.Result{}, err
	}

	res, err := eng.checker.Check(constraint.Candidate{
		Date:             date,
		Division:         div,
		Committee:        ct,
		ExpectedRequests: expectedRequests,
		Scope:            scopeFor(ct),
		ExcludeMeetingID: excludeMeetingID,
	})
	if err != nil {
		return constraint.Result{}, err
	}

	s.bus.Publish(events.CheckEvent{
		DivisionID:      divisionID,
		CommitteeTypeID: committeeTypeID,
		Date:            calendar.Midnight(date),
		Result:          res,
	})
	return res, nil
}

// RecommendRequest parameterizes one ranking run.
type RecommendRequest struct {
	DivisionID      string
	CommitteeTypeID string
	// RouteID selects the stage durations used for deadline projection.
	// Empty falls back to the configured SLA review duration.
	RouteID          string
	From             time.Time
	HorizonDays      int
	ExpectedRequests int
	ExcludeMeetingID string
}

// Recommend ranks every candidate date within the horizon.
func (s *Service) Recommend(ctx context.Context, req RecommendRequest) (scoring.Ranking, error) {
	eng, err := s.engine(ctx)
	if err != nil {
		return scoring.Ranking{}, err
	}
	div, err := eng.ds.Division(req.DivisionID)
	if err != nil {
		return scoring.Ranking{}, err
	}
	ct, err := eng.ds.CommitteeType(req.CommitteeTypeID)
	if err != nil {
		return scoring.Ranking{}, err
	}
	var stages model.StageDurations
	if req.RouteID != "" {
		route, err := eng.ds.Route(req.RouteID)
		if err != nil {
			return scoring.Ranking{}, err
		}
		stages = route.Stages
	}

	horizon := req.HorizonDays
	if horizon <= 0 {
		horizon = s.cfg.Assist.HorizonDays
	}
	from := calendar.Midnight(req.From)
	dates := make([]time.Time, 0, horizon)
	for i := 1; i <= horizon; i++ {
		dates = append(dates, from.AddDate(0, 0, i))
	}

	scorer := scoring.Scorer{Checker: eng.checker, Weights: s.cfg.Weights}
	ranking, err := scorer.Rank(scoring.Request{
		Division:         div,
		Committee:        ct,
		Stages:           stages,
		ExpectedRequests: req.ExpectedRequests,
		Today:            from,
		Scope:            scopeFor(ct),
		ExcludeMeetingID: req.ExcludeMeetingID,
	}, dates)
	if err != nil {
		return scoring.Ranking{}, err
	}

	ev := events.RecommendationEvent{
		DivisionID:      req.DivisionID,
		CommitteeTypeID: req.CommitteeTypeID,
		Candidates:      len(ranking.Candidates),
		MeanScore:       ranking.Mean,
		StdDev:          ranking.StdDev,
	}
	if len(ranking.Candidates) > 0 {
		ev.TopDate = ranking.Candidates[0].Date
		ev.TopScore = ranking.Candidates[0].Score
	}
	s.bus.Publish(ev)
	return ranking, nil
}

// Seed replaces the stored dataset.
func (s *Service) Seed(ctx context.Context, ds store.Dataset) error {
	return s.store.Seed(ctx, ds)
}

// Run starts the assist loop and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	sink, err := metrics.New(s.cfg.Metrics)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	metrics.StartEventCollector(ctx, s.bus, sink)
	announce.StartAnnouncer(ctx, s.bus, s.pub)
	if s.cfg.Metrics.Prometheus.Enabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.Prometheus.Addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	interval := time.Duration(s.cfg.Assist.IntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Infof("assist loop started, interval %s", interval)
	s.assistPass(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.assistPass(ctx)
		}
	}
}

// assistPass ranks upcoming dates for every active committee type.
func (s *Service) assistPass(ctx context.Context) {
	eng, err := s.engine(ctx)
	if err != nil {
		s.log.Errorf("assist pass: %v", err)
		return
	}
	today := calendar.Midnight(time.Now())
	for _, ct := range eng.ds.CommitteeTypes {
		if !ct.Status.IsActive() {
			continue
		}
		ranking, err := s.Recommend(ctx, RecommendRequest{
			DivisionID:      ct.DivisionID,
			CommitteeTypeID: ct.ID,
			From:            today,
			HorizonDays:     s.cfg.Assist.HorizonDays,
		})
		if err != nil {
			s.log.Errorf("recommend %s: %v", ct.ID, err)
			continue
		}
		top := ranking.Top(s.cfg.Assist.TopK)
		if len(top) == 0 {
			s.log.Warnf("no candidate for committee type %s within %d days", ct.ID, s.cfg.Assist.HorizonDays)
			continue
		}
		s.log.Infof("committee type %s: top candidate %s (score %.0f of %d candidates)",
			ct.ID, top[0].Date.Format("2006-01-02"), top[0].Score, len(ranking.Candidates))
	}
}

// Bus exposes the internal event bus for observers.
func (s *Service) Bus() eventbus.EventBus { return s.bus }

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func scopeFor(ct model.CommitteeType) load.Scope {
	if ct.Operational {
		return load.ScopeOperational
	}
	return load.ScopeNonOperational
}
