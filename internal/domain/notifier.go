package domain

import "context"

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=domain

// Permission mirrors the tri-state permission model of system notifications.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

type Notifier interface {
	Permission(ctx context.Context) Permission
	RequestPermission(ctx context.Context) Permission
	Notify(ctx context.Context, req NotificationRequest) error
}

type SoundPlayer interface {
	Play(ctx context.Context) error
}

type AlertRenderer interface {
	ShowBanner(banner Banner) string
	ShowOverlay(overlay Overlay) string
}
