//go:build !gcloud

package notifier

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

// NewNotifier returns the ntfy notifier, or the noop one when no topic is set.
func NewNotifier(ctx context.Context, cfg *Config) (domain.Notifier, func() error, error) {
	n := NewNtfyNotifier(cfg)
	if _, ok := n.(noopNotifier); ok {
		slog.InfoContext(ctx, "ntfy topic not configured, system notifications disabled")
	} else {
		slog.InfoContext(ctx, "notifier initialized",
			slog.String("type", "ntfy"),
		)
	}
	return n, func() error { return nil }, nil
}
