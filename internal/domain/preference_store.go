package domain

import "context"

//go:generate mockgen -source=preference_store.go -destination=preference_store_mock.go -package=domain

// PreferenceStore is durable client-side key/value storage.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}
