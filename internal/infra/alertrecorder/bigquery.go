//go:build gcloud

package alertrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type bigQueryDispatchRecord struct {
	RecordedAt   time.Time `bigquery:"recorded_at"`
	DispatchedAt time.Time `bigquery:"dispatched_at"`
	RequestID    string    `bigquery:"request_id"`
	TaskID       string    `bigquery:"task_id"`
	Tier         string    `bigquery:"tier"`
	MinutesUntil int64     `bigquery:"minutes_until"`
	Deadline     time.Time `bigquery:"deadline"`
	Sound        bool      `bigquery:"sound"`
	Overlay      bool      `bigquery:"overlay"`
	Notified     bool      `bigquery:"notified"`
}

type bigQueryPollRecord struct {
	RecordedAt      time.Time `bigquery:"recorded_at"`
	PolledAt        time.Time `bigquery:"polled_at"`
	RequestID       string    `bigquery:"request_id"`
	Outcome         string    `bigquery:"outcome"`
	TaskCount       int64     `bigquery:"task_count"`
	DispatchedCount int64     `bigquery:"dispatched_count"`
	SuppressedCount int64     `bigquery:"suppressed_count"`
}

type bigQueryRecorder struct {
	client        *bigquery.Client
	alertInserter *bigquery.Inserter
	pollInserter  *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.AlertResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "alert result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, alert result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, alert result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	dataset := client.Dataset(cfg.BigQueryDataset)

	slog.InfoContext(ctx, "alert result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
	)

	return &bigQueryRecorder{
		client:        client,
		alertInserter: dataset.Table(cfg.BigQueryAlertTable).Inserter(),
		pollInserter:  dataset.Table(cfg.BigQueryPollTable).Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordDispatches(ctx context.Context, records []domain.AlertDispatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryDispatchRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryDispatchRecord{
			RecordedAt:   now,
			DispatchedAt: record.DispatchedAt,
			RequestID:    record.RequestID,
			TaskID:       record.TaskID,
			Tier:         record.Tier,
			MinutesUntil: int64(record.MinutesUntil),
			Deadline:     record.Deadline,
			Sound:        record.Sound,
			Overlay:      record.Overlay,
			Notified:     record.Notified,
		})
	}

	if err := r.alertInserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert alert dispatches to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) RecordPoll(ctx context.Context, record domain.PollResultRecord) error {
	row := &bigQueryPollRecord{
		RecordedAt:      time.Now(),
		PolledAt:        record.PolledAt,
		RequestID:       record.RequestID,
		Outcome:         record.Outcome,
		TaskCount:       int64(record.TaskCount),
		DispatchedCount: int64(record.DispatchedCount),
		SuppressedCount: int64(record.SuppressedCount),
	}

	if err := r.pollInserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert poll result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("outcome", record.Outcome),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
