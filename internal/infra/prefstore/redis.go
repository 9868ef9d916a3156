package prefstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const redisKeyPrefix = "reminder:pref:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore keeps preferences in Redis without expiry. The caller owns the
// client lifecycle.
func NewRedisStore(client *redis.Client) domain.PreferenceStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *redisStore) Close() error {
	return nil
}
