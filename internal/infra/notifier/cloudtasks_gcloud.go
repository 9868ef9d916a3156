//go:build gcloud

package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

var invalidTaskNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

type CloudTasksNotifier struct {
	client     *cloudtasks.Client
	queuePath  string
	targetURL  string
	maxRetries int
}

func NewCloudTasksNotifier(ctx context.Context, cfg *Config) (*CloudTasksNotifier, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &CloudTasksNotifier{
		client: client,
		queuePath: fmt.Sprintf("projects/%s/locations/%s/queues/%s",
			cfg.CloudTasksProjectID, cfg.CloudTasksLocationID, cfg.CloudTasksQueueID),
		targetURL:  cfg.PushTargetURL,
		maxRetries: maxRetries,
	}, nil
}

func (n *CloudTasksNotifier) Permission(context.Context) domain.Permission {
	return domain.PermissionGranted
}

func (n *CloudTasksNotifier) RequestPermission(ctx context.Context) domain.Permission {
	return n.Permission(ctx)
}

func (n *CloudTasksNotifier) Notify(ctx context.Context, notification domain.NotificationRequest) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: n.queuePath,
		Task: &taskspb.Task{
			Name: n.queuePath + "/tasks/" + invalidTaskNameChars.ReplaceAllString(notification.Tag, "_"),
			MessageType: &taskspb.Task_HttpRequest{
				HttpRequest: &taskspb.HttpRequest{
					HttpMethod: taskspb.HttpMethod_POST,
					Url:        n.targetURL,
					Headers: map[string]string{
						"Content-Type": "application/json",
					},
					Body: payload,
				},
			},
		},
	}

	var lastErr error
	for attempt := 0; attempt < n.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.DebugContext(ctx, "retrying push registration",
				slog.String("tag", notification.Tag),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		_, err := n.client.CreateTask(ctx, req)
		if err == nil {
			slog.DebugContext(ctx, "push notification registered",
				slog.String("tag", notification.Tag),
			)
			return nil
		}
		if status.Code(err) == codes.AlreadyExists {
			slog.DebugContext(ctx, "push notification already registered",
				slog.String("tag", notification.Tag),
			)
			return nil
		}
		lastErr = err
	}

	return fmt.Errorf("failed to register push after %d retries: %w", n.maxRetries, lastErr)
}

func (n *CloudTasksNotifier) Close() error {
	return n.client.Close()
}
