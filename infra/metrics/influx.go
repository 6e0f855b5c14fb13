package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/taldata/izun-sub001/core/metrics"
	"github.com/taldata/izun-sub001/infra/logger"
)

// InfluxSink writes scheduling events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordCheck writes one candidate validation as a point.
func (s *InfluxSink) RecordCheck(ev coremetrics.CheckEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("schedule_check").
		AddTag("division_id", ev.DivisionID).
		AddTag("committee_type_id", ev.CommitteeTypeID).
		AddTag("passed", strconv.FormatBool(ev.Passed)).
		AddTag("component", "scheduler").
		AddField("date", ev.Date.Format("2006-01-02")).
		AddField("failures", strings.Join(ev.Failures, ",")).
		AddField("third_week", ev.ThirdWeek).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordRecommendation writes one ranking run summary.
func (s *InfluxSink) RecordRecommendation(ev coremetrics.RecommendationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("recommendation_run").
		AddTag("division_id", ev.DivisionID).
		AddTag("committee_type_id", ev.CommitteeTypeID).
		AddTag("component", "scheduler").
		AddField("candidates", ev.Candidates).
		AddField("top_score", round3(ev.TopScore)).
		AddField("mean_score", round3(ev.MeanScore)).
		AddField("std_dev", round3(ev.StdDev)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordDeadlines writes one stage-deadline computation.
func (s *InfluxSink) RecordDeadlines(ev coremetrics.DeadlineEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("deadline_computation").
		AddTag("route_id", ev.RouteID).
		AddTag("call_override", strconv.FormatBool(ev.CallOverride)).
		AddTag("component", "scheduler").
		AddField("meeting_date", ev.MeetingDate.Format("2006-01-02")).
		AddField("call", ev.Deadlines.Call.Format("2006-01-02")).
		AddField("intake", ev.Deadlines.Intake.Format("2006-01-02")).
		AddField("review", ev.Deadlines.Review.Format("2006-01-02")).
		AddField("response", ev.Deadlines.Response.Format("2006-01-02")).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
