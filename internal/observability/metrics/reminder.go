package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reminderMeterName = "reminder.engine"
)

type ReminderMetrics struct {
	pollsTotal         metric.Int64Counter
	pollDuration       metric.Float64Histogram
	tasksFetched       metric.Int64Counter
	alertsDispatched   metric.Int64Counter
	alertsSuppressed   metric.Int64Counter
	channelFailures    metric.Int64Counter
	preferenceToggles  metric.Int64Counter
	notifiedSetEntries metric.Int64UpDownCounter
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	pollsTotal, err := meter.Int64Counter(
		"reminder_polls_total",
		metric.WithDescription("Total number of poll cycles by trigger and outcome"),
		metric.WithUnit("{poll}"),
	)
	if err != nil {
		return nil, err
	}

	pollDuration, err := meter.Float64Histogram(
		"reminder_poll_duration_seconds",
		metric.WithDescription("Time spent in one poll cycle including fetch"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	tasksFetched, err := meter.Int64Counter(
		"reminder_tasks_fetched_total",
		metric.WithDescription("Total number of upcoming tasks received from the server"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	alertsDispatched, err := meter.Int64Counter(
		"reminder_alerts_dispatched_total",
		metric.WithDescription("Alerts dispatched by tier"),
		metric.WithUnit("{alert}"),
	)
	if err != nil {
		return nil, err
	}

	alertsSuppressed, err := meter.Int64Counter(
		"reminder_alerts_suppressed_total",
		metric.WithDescription("Tasks skipped because they were already alerted or not actionable"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	channelFailures, err := meter.Int64Counter(
		"reminder_channel_failures_total",
		metric.WithDescription("Failed or skipped alert channel deliveries"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	preferenceToggles, err := meter.Int64Counter(
		"reminder_preference_toggles_total",
		metric.WithDescription("Preference changes"),
		metric.WithUnit("{toggle}"),
	)
	if err != nil {
		return nil, err
	}

	notifiedSetEntries, err := meter.Int64UpDownCounter(
		"reminder_notified_keys",
		metric.WithDescription("Alert keys recorded in the current session"),
		metric.WithUnit("{key}"),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		pollsTotal:         pollsTotal,
		pollDuration:       pollDuration,
		tasksFetched:       tasksFetched,
		alertsDispatched:   alertsDispatched,
		alertsSuppressed:   alertsSuppressed,
		channelFailures:    channelFailures,
		preferenceToggles:  preferenceToggles,
		notifiedSetEntries: notifiedSetEntries,
	}, nil
}

func (m *ReminderMetrics) RecordPoll(ctx context.Context, trigger, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("trigger", trigger),
		attribute.String("outcome", outcome),
	)
	m.pollsTotal.Add(ctx, 1, attrs)
	m.pollDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *ReminderMetrics) RecordTasksFetched(ctx context.Context, count int) {
	m.tasksFetched.Add(ctx, int64(count))
}

func (m *ReminderMetrics) RecordAlertDispatched(ctx context.Context, tier string) {
	m.alertsDispatched.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tier", tier),
	))
	m.notifiedSetEntries.Add(ctx, 1)
}

func (m *ReminderMetrics) RecordAlertSuppressed(ctx context.Context, reason string) {
	m.alertsSuppressed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

func (m *ReminderMetrics) RecordChannelFailure(ctx context.Context, channel, reason string) {
	m.channelFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("reason", reason),
	))
}

func (m *ReminderMetrics) RecordPreferenceToggle(ctx context.Context, enabled bool) {
	m.preferenceToggles.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("enabled", enabled),
	))
}

func (m *ReminderMetrics) RecordSessionReset(ctx context.Context, cleared int) {
	m.notifiedSetEntries.Add(ctx, -int64(cleared))
}
