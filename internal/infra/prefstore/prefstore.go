// Package prefstore persists user preferences across daemon restarts.
package prefstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Open builds the store for backend. redisClient is only used by the redis
// backend and may be nil otherwise.
func Open(ctx context.Context, backend, sqlitePath string, redisClient *redis.Client) (domain.PreferenceStore, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLite(ctx, sqlitePath)
	case BackendRedis:
		if redisClient == nil {
			return nil, ErrRedisClientRequired
		}
		return NewRedisStore(redisClient), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
