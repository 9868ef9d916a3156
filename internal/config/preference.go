package config

import (
	"os"
	"path/filepath"
)

const (
	preferenceStoreEnv      = "PREFERENCE_STORE"
	preferenceSQLitePathEnv = "PREFERENCE_SQLITE_PATH"

	defaultPreferenceDirName  = "primind-reminder"
	defaultPreferenceFileName = "preferences.db"
)

type PreferenceBackend string

const (
	PreferenceBackendSQLite PreferenceBackend = "sqlite"
	PreferenceBackendRedis  PreferenceBackend = "redis"
	PreferenceBackendMemory PreferenceBackend = "memory"
)

type PreferenceConfig struct {
	Backend    PreferenceBackend
	SQLitePath string
}

func LoadPreferenceConfig() (*PreferenceConfig, error) {
	backend := PreferenceBackend(os.Getenv(preferenceStoreEnv))
	if backend == "" {
		backend = PreferenceBackendSQLite
	}

	switch backend {
	case PreferenceBackendSQLite, PreferenceBackendRedis, PreferenceBackendMemory:
	default:
		return nil, ErrInvalidPreferenceStore
	}

	path := os.Getenv(preferenceSQLitePathEnv)
	if path == "" {
		path = defaultSQLitePath()
	}

	return &PreferenceConfig{
		Backend:    backend,
		SQLitePath: path,
	}, nil
}

func defaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultPreferenceFileName
	}
	return filepath.Join(dir, defaultPreferenceDirName, defaultPreferenceFileName)
}
