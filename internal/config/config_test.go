//go:build !gcloud

package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "TASKS_API_URL", "POLL_INTERVAL_SECONDS",
		"PREFERENCE_STORE", "SOUND_VOLUME", "REDIS_ADDR", "REDIS_DB",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Reminder.PollInterval != 60*time.Second {
		t.Errorf("PollInterval = %v, want 60s", cfg.Reminder.PollInterval)
	}
	if cfg.Preference.Backend != PreferenceBackendSQLite {
		t.Errorf("Preference.Backend = %q, want sqlite", cfg.Preference.Backend)
	}
	if cfg.Preference.SQLitePath == "" {
		t.Error("expected a default sqlite path")
	}
	if cfg.Sound.Volume != 0.7 {
		t.Errorf("Sound.Volume = %v, want 0.7", cfg.Sound.Volume)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want localhost:6379", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TASKS_API_URL", "https://tasks.example.com/")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("POLL_INTERVAL_SECONDS", "15")
	t.Setenv("PREFERENCE_STORE", "redis")
	t.Setenv("SOUND_COMMAND", "paplay --volume={volume}")
	t.Setenv("SOUND_VOLUME", "0.25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TasksAPIURL != "https://tasks.example.com" {
		t.Errorf("TasksAPIURL = %q, want trailing slash trimmed", cfg.TasksAPIURL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.Reminder.PollInterval != 15*time.Second {
		t.Errorf("PollInterval = %v, want 15s", cfg.Reminder.PollInterval)
	}
	if cfg.Preference.Backend != PreferenceBackendRedis {
		t.Errorf("Preference.Backend = %q, want redis", cfg.Preference.Backend)
	}
	if cfg.Sound.Command != "paplay --volume={volume}" || cfg.Sound.Volume != 0.25 {
		t.Errorf("Sound = %+v", cfg.Sound)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "zero poll interval", key: "POLL_INTERVAL_SECONDS", value: "0", wantErr: ErrInvalidPollInterval},
		{name: "non-numeric poll interval", key: "POLL_INTERVAL_SECONDS", value: "soon", wantErr: ErrInvalidPollInterval},
		{name: "unknown preference store", key: "PREFERENCE_STORE", value: "localstorage", wantErr: ErrInvalidPreferenceStore},
		{name: "volume above one", key: "SOUND_VOLUME", value: "1.5", wantErr: ErrInvalidSoundVolume},
		{name: "bad redis db", key: "REDIS_DB", value: "zero", wantErr: ErrInvalidRedisDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForRun(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name:    "missing url",
			cfg:     &Config{Preference: &PreferenceConfig{Backend: PreferenceBackendSQLite}},
			wantErr: ErrTasksAPIURLMissing,
		},
		{
			name:    "relative url",
			cfg:     &Config{TasksAPIURL: "/tasks", Preference: &PreferenceConfig{Backend: PreferenceBackendSQLite}},
			wantErr: ErrTasksAPIURLInvalid,
		},
		{
			name: "redis backend without address",
			cfg: &Config{
				TasksAPIURL: "http://localhost:8000",
				Preference:  &PreferenceConfig{Backend: PreferenceBackendRedis},
				Redis:       &RedisConfig{},
			},
			wantErr: ErrRedisAddrMissing,
		},
		{
			name: "valid",
			cfg: &Config{
				TasksAPIURL: "http://localhost:8000",
				Preference:  &PreferenceConfig{Backend: PreferenceBackendSQLite},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForRun(tt.cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateForRun() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateForRun() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
