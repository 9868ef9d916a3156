package prefstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/testutil"
)

const testKey = "spookyRemindersEnabled"

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, store domain.PreferenceStore) {
	t.Helper()
	ctx := context.Background()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	_, ok, err := store.Get(ctx, testKey)
	if err != nil {
		t.Fatalf("Get() on empty store error = %v", err)
	}
	if ok {
		t.Fatal("expected absent key on empty store")
	}

	steps := []string{"false", "true", "false"}
	for _, value := range steps {
		if err := store.Set(ctx, testKey, value); err != nil {
			t.Fatalf("Set(%q) error = %v", value, err)
		}

		got, ok, err := store.Get(ctx, testKey)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !ok || got != value {
			t.Errorf("Get() = (%q, %v), want (%q, true)", got, ok, value)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	exerciseStore(t, store)

	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := store.Ping(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Ping() after Close = %v, want ErrClosed", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	store, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	exerciseStore(t, store)

	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	first, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := first.Set(ctx, testKey, "false"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close()

	got, ok, err := second.Get(ctx, testKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || got != "false" {
		t.Errorf("Get() after reopen = (%q, %v), want (\"false\", true)", got, ok)
	}
}

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	store := NewRedisStore(client)
	exerciseStore(t, store)

	raw, err := client.Get(ctx, redisKeyPrefix+testKey).Result()
	if err != nil {
		t.Fatalf("raw Get() error = %v", err)
	}
	if raw != "false" {
		t.Errorf("stored value = %q, want %q", raw, "false")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		backend string
		wantErr error
	}{
		{name: "memory", backend: BackendMemory},
		{name: "sqlite", backend: BackendSQLite},
		{name: "redis without client", backend: BackendRedis, wantErr: ErrRedisClientRequired},
		{name: "unknown", backend: "localstorage", wantErr: ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(ctx, tt.backend, filepath.Join(t.TempDir(), "prefs.db"), nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer store.Close()

			if err := store.Ping(ctx); err != nil {
				t.Errorf("Ping() error = %v", err)
			}
		})
	}
}
