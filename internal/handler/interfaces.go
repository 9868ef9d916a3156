package handler

import (
	"context"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/board"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=handler

type ReminderEngine interface {
	Enabled() bool
	Persisted() bool
	SetEnabled(ctx context.Context, enabled bool) error
	NotifyVisible()
	PollOnce(ctx context.Context) reminder.PollResult
	ResetSession(ctx context.Context) int
}

type AlertBoard interface {
	Snapshot() board.Snapshot
	Dismiss(id string) bool
}
