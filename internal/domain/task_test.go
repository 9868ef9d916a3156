package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestTask_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  TaskID
		wantErr bool
	}{
		{name: "numeric id", input: `{"id":42,"name":"Essay","deadline":"2026-10-15T09:00:00Z","minutes_until":3}`, wantID: "42"},
		{name: "string id", input: `{"id":"abc","name":"Essay","deadline":"2026-10-15T09:00:00Z","minutes_until":3}`, wantID: "abc"},
		{name: "null id", input: `{"id":null,"name":"Essay","deadline":"2026-10-15T09:00:00Z","minutes_until":3}`, wantErr: true},
		{name: "missing deadline", input: `{"id":1,"name":"Essay","minutes_until":3}`, wantErr: true},
		{name: "unparseable deadline", input: `{"id":1,"name":"Essay","deadline":"soon","minutes_until":3}`, wantErr: true},
		{name: "fractional id", input: `{"id":4.5,"name":"Essay","deadline":"2026-10-15T09:00:00Z","minutes_until":3}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task Task
			err := json.Unmarshal([]byte(tt.input), &task)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTask) {
					t.Fatalf("expected ErrInvalidTask, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.ID != tt.wantID {
				t.Errorf("id = %q, want %q", task.ID, tt.wantID)
			}
			if task.Name != "Essay" || task.MinutesUntil != 3 {
				t.Errorf("unexpected task: %+v", task)
			}
		})
	}
}

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "utc designator", input: "2025-10-31T18:10:00Z", want: time.Date(2025, 10, 31, 18, 10, 0, 0, time.UTC)},
		{name: "offset with fraction", input: "2025-10-31T18:10:00.123456+09:00", want: time.Date(2025, 10, 31, 9, 10, 0, 123456000, time.UTC)},
		{name: "space separator with offset", input: "2025-10-31 18:10:00+00:00", want: time.Date(2025, 10, 31, 18, 10, 0, 0, time.UTC)},
		{name: "naive datetime", input: "2025-10-31T18:10:00", want: time.Date(2025, 10, 31, 18, 10, 0, 0, time.Local)},
		{name: "naive with microseconds", input: "2025-10-31T18:10:00.500000", want: time.Date(2025, 10, 31, 18, 10, 0, 500000000, time.Local)},
		{name: "naive without seconds", input: "2025-10-31T18:10", want: time.Date(2025, 10, 31, 18, 10, 0, 0, time.Local)},
		{name: "empty", input: "", wantErr: true},
		{name: "free text", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeadline(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTask) {
					t.Fatalf("expected ErrInvalidTask, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDeadline(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTask_UnmarshalJSON_NaiveDeadlineKeepsKeyStable(t *testing.T) {
	input := []byte(`{"id":9,"name":"Lab","deadline":"2025-10-31T18:10:00","minutes_until":10}`)

	var first, second Task
	if err := json.Unmarshal(input, &first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal(input, &second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Key() != second.Key() {
		t.Errorf("keys differ across polls: %v vs %v", first.Key(), second.Key())
	}
	if first.ID != "9" || first.Name != "Lab" || first.MinutesUntil != 10 {
		t.Errorf("unexpected task: %+v", first)
	}
}

func TestTask_Key(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	deadline := time.Date(2026, 10, 15, 18, 0, 0, 0, jst)

	a := Task{ID: "1", Deadline: deadline}
	b := Task{ID: "1", Deadline: deadline.UTC()}
	moved := Task{ID: "1", Deadline: deadline.Add(time.Hour)}

	if a.Key() != b.Key() {
		t.Error("same instant in different zones must share a key")
	}
	if a.Key() == moved.Key() {
		t.Error("rescheduled deadline must produce a new key")
	}
	if got, want := a.Key().String(), "1-2026-10-15T09:00:00Z"; got != want {
		t.Errorf("key string = %q, want %q", got, want)
	}
}

func TestTier(t *testing.T) {
	tests := []struct {
		tier       Tier
		name       string
		actionable bool
		severe     bool
	}{
		{TierNone, "none", false, false},
		{TierNormal, "normal", true, false},
		{TierWarning, "warning", true, false},
		{TierUrgent, "urgent", true, true},
		{TierOverdue, "overdue", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.tier.IsActionable(); got != tt.actionable {
				t.Errorf("IsActionable() = %v, want %v", got, tt.actionable)
			}
			if got := tt.tier.IsSevere(); got != tt.severe {
				t.Errorf("IsSevere() = %v, want %v", got, tt.severe)
			}

			parsed, ok := ParseTier(tt.name)
			if ok != tt.actionable {
				t.Errorf("ParseTier(%q) ok = %v, want %v", tt.name, ok, tt.actionable)
			}
			if ok && parsed != tt.tier {
				t.Errorf("ParseTier(%q) = %v, want %v", tt.name, parsed, tt.tier)
			}
		})
	}
}
