package prefstore

import "errors"

var (
	ErrUnknownBackend      = errors.New("unknown preference store backend")
	ErrRedisClientRequired = errors.New("redis client is required for the redis backend")
	ErrClosed              = errors.New("preference store closed")
)
