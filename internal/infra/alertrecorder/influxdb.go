//go:build !gcloud

package alertrecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const (
	dispatchMeasurement = "alert_dispatch"
	pollMeasurement     = "reminder_poll"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.AlertResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "alert result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, alert result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "alert result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordDispatches(ctx context.Context, records []domain.AlertDispatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		points = append(points, dispatchPoint(record))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write alert dispatches to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *influxDBRecorder) RecordPoll(ctx context.Context, record domain.PollResultRecord) error {
	if err := r.writeAPI.WritePoint(ctx, pollPoint(record)); err != nil {
		slog.WarnContext(ctx, "failed to write poll result to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("outcome", record.Outcome),
		)
	}

	return nil
}

func (r *influxDBRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}

func dispatchPoint(record domain.AlertDispatchRecord) *write.Point {
	return influxdb2.NewPoint(
		dispatchMeasurement,
		map[string]string{
			"tier":    record.Tier,
			"task_id": record.TaskID,
		},
		map[string]any{
			"request_id":    record.RequestID,
			"minutes_until": record.MinutesUntil,
			"deadline_unix": record.Deadline.Unix(),
			"sound":         record.Sound,
			"overlay":       record.Overlay,
			"notified":      record.Notified,
		},
		record.DispatchedAt,
	)
}

func pollPoint(record domain.PollResultRecord) *write.Point {
	return influxdb2.NewPoint(
		pollMeasurement,
		map[string]string{
			"outcome": record.Outcome,
		},
		map[string]any{
			"request_id":       record.RequestID,
			"task_count":       record.TaskCount,
			"dispatched_count": record.DispatchedCount,
			"suppressed_count": record.SuppressedCount,
		},
		record.PolledAt,
	)
}
