package notifier

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type capturedRequest struct {
	method  string
	body    string
	headers http.Header
}

func newNtfyServer(t *testing.T, status int) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()

	captured := make(chan capturedRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured <- capturedRequest{method: r.Method, body: string(body), headers: r.Header.Clone()}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

func TestNewNtfyNotifier_NoTopicIsDenied(t *testing.T) {
	n := NewNtfyNotifier(&Config{NtfyTopic: "  "})
	ctx := context.Background()

	if got := n.Permission(ctx); got != domain.PermissionDenied {
		t.Errorf("Permission() = %q, want denied", got)
	}
	if got := n.RequestPermission(ctx); got != domain.PermissionDenied {
		t.Errorf("RequestPermission() = %q, want denied", got)
	}
	if err := n.Notify(ctx, domain.NotificationRequest{}); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("Notify() error = %v, want ErrPermissionDenied", err)
	}
}

func TestNtfyNotifier_Notify(t *testing.T) {
	tests := []struct {
		name         string
		req          domain.NotificationRequest
		assetBaseURL string
		wantPriority string
		wantIcon     string
		wantTags     string
	}{
		{
			name: "overdue is urgent priority",
			req: domain.NotificationRequest{
				Title:              "🚨 OVERDUE TASK!",
				Body:               `"Essay" is overdue! Complete it now!`,
				Icon:               "/static/accounts/images/ghost-icon.png",
				Tag:                "task-reminder-1-1700000000000",
				RequireInteraction: true,
				TaskID:             "1",
				Tier:               "overdue",
			},
			assetBaseURL: "https://reminders.example.com/",
			wantPriority: "urgent",
			wantIcon:     "https://reminders.example.com/static/accounts/images/ghost-icon.png",
			wantTags:     "reminder,overdue,task-1",
		},
		{
			name: "normal keeps default priority and drops relative icon",
			req: domain.NotificationRequest{
				Title:  "🎃 Task Reminder",
				Body:   `"Quiz" is due in 25 minutes`,
				Icon:   "/static/accounts/images/ghost-icon.png",
				Tag:    "task-reminder-2-1700000000000",
				TaskID: "2",
				Tier:   "normal",
			},
			wantTags: "reminder,normal,task-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, captured := newNtfyServer(t, http.StatusOK)
			n := NewNtfyNotifier(&Config{NtfyTopic: srv.URL + "/reminders", AssetBaseURL: tt.assetBaseURL})

			if got := n.Permission(context.Background()); got != domain.PermissionGranted {
				t.Fatalf("Permission() = %q, want granted", got)
			}
			if err := n.Notify(context.Background(), tt.req); err != nil {
				t.Fatalf("Notify() error = %v", err)
			}

			got := <-captured
			if got.method != http.MethodPost {
				t.Errorf("method = %q, want POST", got.method)
			}
			if got.body != tt.req.Body {
				t.Errorf("body = %q, want %q", got.body, tt.req.Body)
			}
			if title := got.headers.Get("Title"); title != tt.req.Title {
				t.Errorf("Title = %q, want %q", title, tt.req.Title)
			}
			if p := got.headers.Get("Priority"); p != tt.wantPriority {
				t.Errorf("Priority = %q, want %q", p, tt.wantPriority)
			}
			if icon := got.headers.Get("Icon"); icon != tt.wantIcon {
				t.Errorf("Icon = %q, want %q", icon, tt.wantIcon)
			}
			if tags := got.headers.Get("Tags"); tags != tt.wantTags {
				t.Errorf("Tags = %q, want %q", tags, tt.wantTags)
			}
			if tag := got.headers.Get("X-Reminder-Tag"); tag != tt.req.Tag {
				t.Errorf("X-Reminder-Tag = %q, want %q", tag, tt.req.Tag)
			}
		})
	}
}

func TestNtfyNotifier_NotifyErrorStatus(t *testing.T) {
	srv, _ := newNtfyServer(t, http.StatusTooManyRequests)
	n := NewNtfyNotifier(&Config{NtfyTopic: srv.URL})

	err := n.Notify(context.Background(), domain.NotificationRequest{Body: "x"})
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("Notify() error = %v, want status 429 in error", err)
	}
}
