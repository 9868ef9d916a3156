package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/board"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *MockReminderEngine, *MockAlertBoard) {
	t.Helper()

	ctrl := gomock.NewController(t)
	engine := NewMockReminderEngine(ctrl)
	alerts := NewMockAlertBoard(ctrl)

	r := gin.New()
	NewReminderHandler(engine, alerts).Register(r.Group("/api/v1"))

	return r, engine, alerts
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleGetPreference(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		persisted bool
	}{
		{name: "saved toggle", enabled: false, persisted: true},
		{name: "unsaved toggle after failed save", enabled: true, persisted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, engine, _ := newTestRouter(t)
			engine.EXPECT().Enabled().Return(tt.enabled)
			engine.EXPECT().Persisted().Return(tt.persisted)

			w := serve(r, http.MethodGet, "/api/v1/preference", "")

			if w.Code != http.StatusOK {
				t.Fatalf("status code = %d, want %d", w.Code, http.StatusOK)
			}

			var resp PreferenceResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", resp.Enabled, tt.enabled)
			}
			if resp.Persisted != tt.persisted {
				t.Errorf("persisted = %v, want %v", resp.Persisted, tt.persisted)
			}
		})
	}
}

func TestHandlePutPreference(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		setupMock     func(engine *MockReminderEngine)
		wantStatus    int
		wantEnabled   bool
		wantPersisted bool
	}{
		{
			name: "disable",
			body: `{"enabled":false}`,
			setupMock: func(engine *MockReminderEngine) {
				engine.EXPECT().SetEnabled(gomock.Any(), false).Return(nil)
				engine.EXPECT().Enabled().Return(false)
			},
			wantStatus:    http.StatusOK,
			wantEnabled:   false,
			wantPersisted: true,
		},
		{
			name: "enable",
			body: `{"enabled":true}`,
			setupMock: func(engine *MockReminderEngine) {
				engine.EXPECT().SetEnabled(gomock.Any(), true).Return(nil)
				engine.EXPECT().Enabled().Return(true)
			},
			wantStatus:    http.StatusOK,
			wantEnabled:   true,
			wantPersisted: true,
		},
		{
			name: "store failure still applies toggle",
			body: `{"enabled":false}`,
			setupMock: func(engine *MockReminderEngine) {
				engine.EXPECT().SetEnabled(gomock.Any(), false).Return(errors.New("disk full"))
				engine.EXPECT().Enabled().Return(false)
			},
			wantStatus:    http.StatusOK,
			wantEnabled:   false,
			wantPersisted: false,
		},
		{
			name:       "missing field",
			body:       `{}`,
			setupMock:  func(*MockReminderEngine) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"enabled":`,
			setupMock:  func(*MockReminderEngine) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, engine, _ := newTestRouter(t)
			tt.setupMock(engine)

			w := serve(r, http.MethodPut, "/api/v1/preference", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status code = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				var resp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode error: %v", err)
				}
				if resp.Error != "validation_error" {
					t.Errorf("error = %q, want validation_error", resp.Error)
				}
				return
			}

			var resp PreferenceResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Enabled != tt.wantEnabled {
				t.Errorf("enabled = %v, want %v", resp.Enabled, tt.wantEnabled)
			}
			if resp.Persisted != tt.wantPersisted {
				t.Errorf("persisted = %v, want %v", resp.Persisted, tt.wantPersisted)
			}
		})
	}
}

func TestHandleVisibility(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectNotify  bool
		wantStatus    int
		wantScheduled bool
	}{
		{name: "visible schedules poll", body: `{"hidden":false}`, expectNotify: true, wantStatus: http.StatusAccepted, wantScheduled: true},
		{name: "hidden is ignored", body: `{"hidden":true}`, wantStatus: http.StatusAccepted},
		{name: "invalid body", body: `not json`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, engine, _ := newTestRouter(t)
			if tt.expectNotify {
				engine.EXPECT().NotifyVisible().Times(1)
			}

			w := serve(r, http.MethodPost, "/api/v1/visibility", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status code = %d, want %d", w.Code, tt.wantStatus)
			}
			if w.Code != http.StatusAccepted {
				return
			}

			var resp VisibilityResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.PollScheduled != tt.wantScheduled {
				t.Errorf("poll_scheduled = %v, want %v", resp.PollScheduled, tt.wantScheduled)
			}
		})
	}
}

func TestHandlePoll(t *testing.T) {
	r, engine, _ := newTestRouter(t)

	polledAt := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	engine.EXPECT().PollOnce(gomock.Any()).Return(reminder.PollResult{
		RequestID: "req-1",
		Trigger:   reminder.TriggerManual,
		Outcome:   reminder.OutcomeOK,
		TaskCount: 2,
		Dispatched: []reminder.DispatchedAlert{
			{TaskID: "42", TaskName: "Essay", Tier: "urgent", MinutesUntil: 3},
		},
		Suppressed: 1,
		PolledAt:   polledAt,
	})

	w := serve(r, http.MethodPost, "/api/v1/poll", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", w.Code, http.StatusOK)
	}

	var resp reminder.PollResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Outcome != reminder.OutcomeOK || resp.TaskCount != 2 || resp.Suppressed != 1 {
		t.Errorf("unexpected result: %+v", resp)
	}
	if len(resp.Dispatched) != 1 || resp.Dispatched[0].TaskID != domain.TaskID("42") {
		t.Errorf("dispatched = %+v", resp.Dispatched)
	}
	if !resp.PolledAt.Equal(polledAt) {
		t.Errorf("polled_at = %v, want %v", resp.PolledAt, polledAt)
	}
}

func TestHandleListAlerts(t *testing.T) {
	r, _, alerts := newTestRouter(t)

	alerts.EXPECT().Snapshot().Return(board.Snapshot{
		ContainerID: board.ContainerID,
		Banners: []board.BannerState{
			{ID: "b-1", TaskID: "7", TaskName: "Report", Tier: "warning", Phase: board.PhaseVisible},
		},
	})

	w := serve(r, http.MethodGet, "/api/v1/alerts", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", w.Code, http.StatusOK)
	}

	var snap board.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if snap.ContainerID != board.ContainerID {
		t.Errorf("container_id = %q", snap.ContainerID)
	}
	if len(snap.Banners) != 1 || snap.Banners[0].ID != "b-1" {
		t.Errorf("banners = %+v", snap.Banners)
	}
}

func TestHandleDismissAlert(t *testing.T) {
	tests := []struct {
		name       string
		found      bool
		wantStatus int
	}{
		{name: "dismissed", found: true, wantStatus: http.StatusNoContent},
		{name: "unknown id", found: false, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, alerts := newTestRouter(t)
			alerts.EXPECT().Dismiss("b-1").Return(tt.found)

			w := serve(r, http.MethodDelete, "/api/v1/alerts/b-1", "")

			if w.Code != tt.wantStatus {
				t.Errorf("status code = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandleSessionReset(t *testing.T) {
	r, engine, _ := newTestRouter(t)
	engine.EXPECT().ResetSession(gomock.Any()).Return(3)

	w := serve(r, http.MethodPost, "/api/v1/session/reset", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", w.Code, http.StatusOK)
	}

	var resp SessionResetResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Cleared != 3 {
		t.Errorf("cleared = %d, want 3", resp.Cleared)
	}
}
