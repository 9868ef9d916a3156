package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func TestNewLogger_WritesJSONWithServiceAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{
		Service:       ServiceInfo{Name: "reminder", Version: "test"},
		Environment:   EnvProd,
		Level:         slog.LevelDebug,
		DefaultModule: Module("reminder-engine"),
		Writer:        &buf,
	})

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "poll completed", slog.Int("task_count", 2))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}

	if entry["msg"] != "poll completed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "poll completed")
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want %q", entry["request_id"], "req-1")
	}
	if entry["module"] != "reminder-engine" {
		t.Errorf("module = %v, want %q", entry["module"], "reminder-engine")
	}
	service, ok := entry["service"].(map[string]any)
	if !ok || service["name"] != "reminder" {
		t.Errorf("service = %v, want name reminder", entry["service"])
	}
}

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := uuid.NewString()
	if got := ValidateAndExtractRequestID(valid); got != valid {
		t.Errorf("ValidateAndExtractRequestID(valid) = %q, want %q", got, valid)
	}

	for _, in := range []string{"", "not-a-uuid"} {
		got := ValidateAndExtractRequestID(in)
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("ValidateAndExtractRequestID(%q) = %q, want a UUID", in, got)
		}
	}
}
