package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const userAgent = "primind-deadline-reminder/0.1.0"

const (
	ntfyPriorityUrgent  = "urgent"
	ntfyPriorityDefault = "default"
)

type ntfyNotifier struct {
	endpoint     string
	assetBaseURL string
	client       *http.Client
}

// NewNtfyNotifier publishes notifications to an ntfy topic. A blank topic
// yields the noop notifier.
func NewNtfyNotifier(cfg *Config) domain.Notifier {
	topic := strings.TrimSpace(cfg.NtfyTopic)
	if topic == "" {
		return NewNoopNotifier()
	}

	timeout := cfg.NtfyRequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &ntfyNotifier{
		endpoint:     topic,
		assetBaseURL: strings.TrimRight(cfg.AssetBaseURL, "/"),
		client:       &http.Client{Timeout: timeout},
	}
}

// Permission is granted as soon as a topic exists; subscribing is the user's
// opt-in on the ntfy side.
func (n *ntfyNotifier) Permission(context.Context) domain.Permission {
	return domain.PermissionGranted
}

func (n *ntfyNotifier) RequestPermission(ctx context.Context) domain.Permission {
	return n.Permission(ctx)
}

func (n *ntfyNotifier) Notify(ctx context.Context, notification domain.NotificationRequest) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(notification.Body))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if notification.Title != "" {
		req.Header.Set("Title", notification.Title)
	}
	req.Header.Set("Tags", strings.Join(tags(notification), ","))
	if notification.RequireInteraction {
		req.Header.Set("Priority", ntfyPriorityUrgent)
	}
	if icon := n.absoluteAsset(notification.Icon); icon != "" {
		req.Header.Set("Icon", icon)
	}
	req.Header.Set("X-Reminder-Tag", notification.Tag)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (n *ntfyNotifier) absoluteAsset(path string) string {
	if path == "" {
		return ""
	}
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	if n.assetBaseURL == "" {
		return ""
	}
	return n.assetBaseURL + "/" + strings.TrimLeft(path, "/")
}

func tags(notification domain.NotificationRequest) []string {
	out := []string{"reminder"}
	if notification.Tier != "" {
		out = append(out, notification.Tier)
	}
	if notification.TaskID != "" {
		out = append(out, "task-"+notification.TaskID.String())
	}
	return out
}
