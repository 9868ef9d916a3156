package tasksapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/tracing"
)

const sessionCookieName = "sessionid"

type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
}

type Option func(*Client)

// WithSessionID attaches the Django session cookie to every request.
func WithSessionID(sessionID string) Option {
	return func(c *Client) {
		c.sessionID = sessionID
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: newHTTPClient(baseURL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) FetchUpcoming(ctx context.Context) ([]domain.Task, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(UpcomingPath)

	ctx, span := tracing.StartExternalAPISpan(ctx, "fetch_upcoming", u.String())
	defer span.End()

	tasks, err := c.fetch(ctx, u.String())
	tracing.RecordError(span, err)
	return tasks, err
}

func (c *Client) fetch(ctx context.Context, target string) ([]domain.Task, error) {
	slog.DebugContext(ctx, "fetching upcoming tasks",
		slog.String("url", target),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	if c.sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.sessionID})
	}
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status code %d", domain.ErrUpcomingTasksResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload upcomingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpcomingTasksResponse, err)
	}

	// A task that cannot be decoded is dropped on its own so the rest of the
	// batch still gets alerted.
	tasks := make([]domain.Task, 0, len(payload.Tasks))
	for i, raw := range payload.Tasks {
		var task domain.Task
		if err := json.Unmarshal(raw, &task); err != nil {
			slog.WarnContext(ctx, "skipping undecodable upcoming task",
				slog.Int("index", i),
				slog.String("task", string(raw)),
				slog.String("error", err.Error()),
			)
			continue
		}
		tasks = append(tasks, task)
	}

	slog.DebugContext(ctx, "fetched upcoming tasks",
		slog.Int("count", len(tasks)),
		slog.Int("skipped", len(payload.Tasks)-len(tasks)),
	)

	return tasks, nil
}
