package config

import (
	"os"
	"strconv"
	"time"
)

const (
	pollIntervalSecondsEnv = "POLL_INTERVAL_SECONDS"
	assetIconEnv           = "REMINDER_ICON"
	assetBadgeEnv          = "REMINDER_BADGE"
	assetOverlayImageEnv   = "REMINDER_OVERLAY_IMAGE"

	defaultPollIntervalSeconds = 60
)

type ReminderConfig struct {
	PollInterval time.Duration
	Icon         string
	Badge        string
	OverlayImage string
}

func LoadReminderConfig() (*ReminderConfig, error) {
	seconds := defaultPollIntervalSeconds
	if v := os.Getenv(pollIntervalSecondsEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidPollInterval
		}
		seconds = parsed
	}

	return &ReminderConfig{
		PollInterval: time.Duration(seconds) * time.Second,
		Icon:         os.Getenv(assetIconEnv),
		Badge:        os.Getenv(assetBadgeEnv),
		OverlayImage: os.Getenv(assetOverlayImageEnv),
	}, nil
}
