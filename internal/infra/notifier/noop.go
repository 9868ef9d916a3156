package notifier

import (
	"context"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

// noopNotifier stands in when no push channel is configured. It reports a
// denied permission so the dispatcher skips system notifications entirely.
type noopNotifier struct{}

func NewNoopNotifier() domain.Notifier {
	return noopNotifier{}
}

func (noopNotifier) Permission(context.Context) domain.Permission {
	return domain.PermissionDenied
}

func (noopNotifier) RequestPermission(context.Context) domain.Permission {
	return domain.PermissionDenied
}

func (noopNotifier) Notify(context.Context, domain.NotificationRequest) error {
	return domain.ErrPermissionDenied
}
