package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=alert_result_recorder.go -destination=alert_result_recorder_mock.go -package=domain

type AlertDispatchRecord struct {
	RequestID    string
	TaskID       string
	Tier         string
	MinutesUntil int
	Deadline     time.Time
	Sound        bool
	Overlay      bool
	Notified     bool
	DispatchedAt time.Time
}

type PollResultRecord struct {
	RequestID       string
	Outcome         string
	TaskCount       int
	DispatchedCount int
	SuppressedCount int
	PolledAt        time.Time
}

type AlertResultRecorder interface {
	RecordDispatches(ctx context.Context, records []AlertDispatchRecord) error
	RecordPoll(ctx context.Context, record PollResultRecord) error
	Flush(ctx context.Context) error
	Close() error
}
