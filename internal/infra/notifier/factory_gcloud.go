//go:build gcloud

package notifier

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

// NewNotifier returns the Cloud Tasks push notifier, or the noop one when no
// push target is configured.
func NewNotifier(ctx context.Context, cfg *Config) (domain.Notifier, func() error, error) {
	if cfg.PushTargetURL == "" || cfg.CloudTasksProjectID == "" {
		slog.InfoContext(ctx, "push target not configured, system notifications disabled")
		return NewNoopNotifier(), func() error { return nil }, nil
	}

	n, err := NewCloudTasksNotifier(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "notifier initialized",
		slog.String("type", "cloudtasks"),
		slog.String("queue", cfg.CloudTasksQueueID),
	)
	return n, n.Close, nil
}
