package config

import "errors"

var (
	ErrTasksAPIURLMissing     = errors.New("TASKS_API_URL environment variable is required")
	ErrTasksAPIURLInvalid     = errors.New("TASKS_API_URL must be an absolute http(s) URL")
	ErrInvalidPollInterval    = errors.New("POLL_INTERVAL_SECONDS must be a positive integer")
	ErrInvalidPreferenceStore = errors.New("PREFERENCE_STORE must be one of sqlite, redis, memory")
	ErrInvalidSoundVolume     = errors.New("SOUND_VOLUME must be a number between 0 and 1")
	ErrRedisAddrMissing       = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB         = errors.New("REDIS_DB must be a valid integer")
	ErrGCloudProjectMissing   = errors.New("GCLOUD_PROJECT_ID is required")
)
