package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/handler"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/board"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"
)

var errAlertNotFound = errors.New("alert not found")

// controlClient talks to a running daemon over its control API.
type controlClient struct {
	baseURL    string
	httpClient *http.Client
}

func newControlClient(addr string) *controlClient {
	return &controlClient{
		baseURL: strings.TrimRight(addr, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *controlClient) Preference(ctx context.Context) (handler.PreferenceResponse, error) {
	var resp handler.PreferenceResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/preference", nil, &resp)
	return resp, err
}

func (c *controlClient) SetPreference(ctx context.Context, enabled bool) (handler.PreferenceResponse, error) {
	var resp handler.PreferenceResponse
	err := c.do(ctx, http.MethodPut, "/api/v1/preference", handler.PreferenceRequest{Enabled: &enabled}, &resp)
	return resp, err
}

func (c *controlClient) Alerts(ctx context.Context) (board.Snapshot, error) {
	var snap board.Snapshot
	err := c.do(ctx, http.MethodGet, "/api/v1/alerts", nil, &snap)
	return snap, err
}

func (c *controlClient) Dismiss(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/api/v1/alerts/"+id, nil, nil)
	var statusErr *statusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %s", errAlertNotFound, id)
	}
	return err
}

func (c *controlClient) Poll(ctx context.Context) (reminder.PollResult, error) {
	var result reminder.PollResult
	err := c.do(ctx, http.MethodPost, "/api/v1/poll", nil, &result)
	return result, err
}

func (c *controlClient) Visible(ctx context.Context) (handler.VisibilityResponse, error) {
	var resp handler.VisibilityResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/visibility", handler.VisibilityRequest{Hidden: false}, &resp)
	return resp, err
}

func (c *controlClient) ResetSession(ctx context.Context) (handler.SessionResetResponse, error) {
	var resp handler.SessionResetResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/session/reset", nil, &resp)
	return resp, err
}

type statusError struct {
	Status  int
	Code    string
	Message string
}

func (e *statusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("daemon returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("daemon returned %d", e.Status)
}

func (c *controlClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connect to daemon at %s: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &statusError{Status: resp.StatusCode}
		var errResp handler.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			statusErr.Code = errResp.Error
			statusErr.Message = errResp.Message
		}
		return statusErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
