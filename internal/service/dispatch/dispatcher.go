package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/clock"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/tracing"
)

// Result describes which channels a dispatch actually reached.
type Result struct {
	Bundle                domain.AlertBundle
	BannerID              string
	OverlayID             string
	SoundPlayed           bool
	NotificationRequested bool
}

type Dispatcher struct {
	notifier domain.Notifier
	sound    domain.SoundPlayer
	renderer domain.AlertRenderer
	clock    clock.Clock
	assets   Assets
	metrics  *metrics.ReminderMetrics

	pending sync.WaitGroup
}

func NewDispatcher(
	notifier domain.Notifier,
	sound domain.SoundPlayer,
	renderer domain.AlertRenderer,
	clk clock.Clock,
	assets Assets,
	reminderMetrics *metrics.ReminderMetrics,
) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		sound:    sound,
		renderer: renderer,
		clock:    clk,
		assets:   assets,
		metrics:  reminderMetrics,
	}
}

// Dispatch fires every channel of the tier's bundle. Channel failures are
// logged and never returned; the notification request runs in the background
// so that a slow push does not hold up the rest of the batch.
func (d *Dispatcher) Dispatch(ctx context.Context, task domain.Task, tier domain.Tier) Result {
	ctx, span := tracing.StartDispatchSpan(ctx, task.ID.String(), tier.String())
	defer span.End()

	bundle := BuildBundle(task, tier, d.assets, d.clock.Now())
	result := Result{Bundle: bundle}

	if bundle.PlaySound {
		result.SoundPlayed = d.playSound(ctx, task)
	}

	if bundle.ShowOverlay {
		result.OverlayID = d.renderer.ShowOverlay(bundle.Overlay)
	}

	result.NotificationRequested = d.requestNotification(ctx, bundle.Notification)

	result.BannerID = d.renderer.ShowBanner(bundle.Banner)

	slog.InfoContext(ctx, "alert dispatched",
		slog.String("task_id", task.ID.String()),
		slog.String("task_name", task.Name),
		slog.String("tier", tier.String()),
		slog.Int("minutes_until", task.MinutesUntil),
		slog.Bool("sound", result.SoundPlayed),
		slog.Bool("overlay", result.OverlayID != ""),
		slog.Bool("notification", result.NotificationRequested),
		slog.String("banner_id", result.BannerID),
	)

	if d.metrics != nil {
		d.metrics.RecordAlertDispatched(ctx, tier.String())
	}

	return result
}

// Wait blocks until background notification requests have finished.
func (d *Dispatcher) Wait() {
	d.pending.Wait()
}

func (d *Dispatcher) playSound(ctx context.Context, task domain.Task) bool {
	if d.sound == nil {
		return false
	}

	if err := d.sound.Play(ctx); err != nil {
		if errors.Is(err, domain.ErrPlaybackUnavailable) {
			slog.DebugContext(ctx, "sound playback unavailable, continuing visual-only",
				slog.String("task_id", task.ID.String()),
			)
		} else {
			slog.WarnContext(ctx, "sound playback failed",
				slog.String("task_id", task.ID.String()),
				slog.String("error", err.Error()),
			)
		}
		if d.metrics != nil {
			d.metrics.RecordChannelFailure(ctx, "sound", "playback")
		}
		return false
	}

	return true
}

func (d *Dispatcher) requestNotification(ctx context.Context, req domain.NotificationRequest) bool {
	if d.notifier == nil {
		return false
	}

	if perm := d.notifier.Permission(ctx); perm != domain.PermissionGranted {
		slog.DebugContext(ctx, "notification permission not granted, skipping system notification",
			slog.String("task_id", req.TaskID.String()),
			slog.String("permission", string(perm)),
		)
		if d.metrics != nil {
			d.metrics.RecordChannelFailure(ctx, "notification", "permission")
		}
		return false
	}

	bgCtx := context.WithoutCancel(ctx)
	d.pending.Add(1)
	go func() {
		defer d.pending.Done()

		if err := d.notifier.Notify(bgCtx, req); err != nil {
			slog.WarnContext(bgCtx, "system notification failed",
				slog.String("task_id", req.TaskID.String()),
				slog.String("tag", req.Tag),
				slog.String("error", err.Error()),
			)
			if d.metrics != nil {
				d.metrics.RecordChannelFailure(bgCtx, "notification", "delivery")
			}
		}
	}()

	return true
}
