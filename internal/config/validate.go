package config

import (
	"fmt"
	"net/url"
)

func ValidateForRun(cfg *Config) error {
	if cfg.TasksAPIURL == "" {
		return ErrTasksAPIURLMissing
	}

	u, err := url.Parse(cfg.TasksAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrTasksAPIURLInvalid, cfg.TasksAPIURL)
	}

	if cfg.Preference != nil && cfg.Preference.Backend == PreferenceBackendRedis {
		if err := cfg.Redis.Validate(); err != nil {
			return err
		}
	}

	return validatePlatform(cfg)
}
