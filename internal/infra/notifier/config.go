package notifier

import (
	"os"
	"strconv"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

type Config struct {
	// NtfyTopic is the full topic URL, e.g. https://ntfy.sh/my-reminders.
	NtfyTopic          string
	NtfyRequestTimeout time.Duration
	// AssetBaseURL turns relative icon paths into absolute URLs.
	AssetBaseURL string

	CloudTasksProjectID  string
	CloudTasksLocationID string
	CloudTasksQueueID    string
	PushTargetURL        string
	MaxRetries           int
}

func LoadConfig() *Config {
	timeout := defaultRequestTimeout
	if raw := os.Getenv("NTFY_REQUEST_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	maxRetries := 3
	if raw := os.Getenv("PUSH_MAX_RETRIES"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	return &Config{
		NtfyTopic:          os.Getenv("NTFY_TOPIC"),
		NtfyRequestTimeout: timeout,
		AssetBaseURL:       os.Getenv("ASSET_BASE_URL"),

		CloudTasksProjectID:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		CloudTasksLocationID: getEnvOrDefault("CLOUD_TASKS_LOCATION", "asia-northeast1"),
		CloudTasksQueueID:    getEnvOrDefault("CLOUD_TASKS_QUEUE", "reminder-push"),
		PushTargetURL:        os.Getenv("PUSH_TARGET_URL"),
		MaxRetries:           maxRetries,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
