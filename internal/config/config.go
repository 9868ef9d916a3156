package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	TasksAPIURL     string
	TasksSessionID  string
	Port            string
	LogLevel        slog.Level
	Environment     string
	GCloudProjectID string
	Reminder        *ReminderConfig
	Preference      *PreferenceConfig
	Sound           *SoundConfig
	Redis           *RedisConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	reminderConfig, err := LoadReminderConfig()
	if err != nil {
		return nil, err
	}

	preferenceConfig, err := LoadPreferenceConfig()
	if err != nil {
		return nil, err
	}

	soundConfig, err := LoadSoundConfig()
	if err != nil {
		return nil, err
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		TasksAPIURL:     strings.TrimRight(os.Getenv("TASKS_API_URL"), "/"),
		TasksSessionID:  os.Getenv("TASKS_API_SESSION_ID"),
		Port:            port,
		LogLevel:        parseLogLevel(os.Getenv("LOG_LEVEL")),
		Environment:     env,
		GCloudProjectID: os.Getenv("GCLOUD_PROJECT_ID"),
		Reminder:        reminderConfig,
		Preference:      preferenceConfig,
		Sound:           soundConfig,
		Redis:           redisConfig,
	}, nil
}

// LogLevelFromEnv reads LOG_LEVEL so the logger can be built before the rest
// of the configuration is loaded.
func LogLevelFromEnv() slog.Level {
	return parseLogLevel(os.Getenv("LOG_LEVEL"))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
