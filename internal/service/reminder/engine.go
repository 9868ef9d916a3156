package reminder

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/clock"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/tasksapi"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/tracing"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/dispatch"
)

var ErrAlreadyStarted = errors.New("reminder engine already started")

// AlertGate decides whether a task gets alerted in this session.
type AlertGate interface {
	Check(task domain.Task) (domain.Tier, bool)
	Len() int
	Reset() int
}

type AlertDispatcher interface {
	Dispatch(ctx context.Context, task domain.Task, tier domain.Tier) dispatch.Result
	Wait()
}

type Dependencies struct {
	Tasks      tasksapi.UpcomingTasksRepository
	Gate       AlertGate
	Dispatcher AlertDispatcher
	Notifier   domain.Notifier
	Prefs      domain.PreferenceStore
	Recorder   domain.AlertResultRecorder
	Clock      clock.Clock
	Metrics    *metrics.ReminderMetrics
}

type Options struct {
	PollInterval time.Duration
}

type Engine struct {
	tasks      tasksapi.UpcomingTasksRepository
	gate       AlertGate
	dispatcher AlertDispatcher
	notifier   domain.Notifier
	prefs      domain.PreferenceStore
	recorder   domain.AlertResultRecorder
	clock      clock.Clock
	metrics    *metrics.ReminderMetrics

	pollInterval time.Duration

	enabled   atomic.Bool
	persisted atomic.Bool
	started atomic.Bool
	visible chan struct{}

	// pollMu serializes poll cycles so two triggers never interleave.
	pollMu sync.Mutex
}

func NewEngine(deps Dependencies, opts Options) *Engine {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	clk := deps.Clock
	if clk == nil {
		clk = clock.New()
	}

	e := &Engine{
		tasks:        deps.Tasks,
		gate:         deps.Gate,
		dispatcher:   deps.Dispatcher,
		notifier:     deps.Notifier,
		prefs:        deps.Prefs,
		recorder:     deps.Recorder,
		clock:        clk,
		metrics:      deps.Metrics,
		pollInterval: interval,
		visible:      make(chan struct{}, 1),
	}
	e.enabled.Store(true)
	e.persisted.Store(true)
	return e
}

// Start loads the preference, asks for notification permission, polls once and
// then keeps polling until ctx is cancelled. It blocks for the engine's lifetime.
func (e *Engine) Start(ctx context.Context) error {
	if !e.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	e.LoadPreference(ctx)
	e.requestPermission(ctx)

	ticker := e.clock.NewTicker(e.pollInterval)
	defer ticker.Stop()

	e.poll(ctx, TriggerStartup)

	slog.InfoContext(ctx, "reminder engine started",
		slog.Duration("poll_interval", e.pollInterval),
		slog.Bool("enabled", e.Enabled()),
	)

	for {
		select {
		case <-ctx.Done():
			e.dispatcher.Wait()
			slog.InfoContext(ctx, "reminder engine stopped",
				slog.Int("notified_keys", e.gate.Len()),
			)
			return nil
		case <-ticker.C():
			e.poll(ctx, TriggerInterval)
		case <-e.visible:
			e.poll(ctx, TriggerVisibility)
		}
	}
}

// NotifyVisible schedules an extra poll because the user came back. Calls made
// while one is already pending are coalesced.
func (e *Engine) NotifyVisible() {
	select {
	case e.visible <- struct{}{}:
	default:
	}
}

// PollOnce runs one poll cycle immediately on the caller's goroutine.
func (e *Engine) PollOnce(ctx context.Context) PollResult {
	return e.poll(ctx, TriggerManual)
}

func (e *Engine) Enabled() bool {
	return e.enabled.Load()
}

// SetEnabled applies the toggle at once and persists it. The in-memory value
// stays applied even when persisting fails.
func (e *Engine) SetEnabled(ctx context.Context, enabled bool) error {
	e.enabled.Store(enabled)

	if e.metrics != nil {
		e.metrics.RecordPreferenceToggle(ctx, enabled)
	}

	slog.InfoContext(ctx, "reminder preference changed",
		slog.Bool("enabled", enabled),
	)

	if e.prefs == nil {
		return nil
	}
	if err := e.prefs.Set(ctx, PreferenceKey, strconv.FormatBool(enabled)); err != nil {
		e.persisted.Store(false)
		slog.WarnContext(ctx, "failed to persist reminder preference",
			slog.String("error", err.Error()),
		)
		return err
	}
	e.persisted.Store(true)
	return nil
}

// Persisted reports whether the current toggle matches what is stored. It is
// false after a toggle whose save failed, until a later save succeeds.
func (e *Engine) Persisted() bool {
	return e.persisted.Load()
}

// LoadPreference reads the stored toggle. A missing value means enabled; any
// stored value other than "true" means disabled.
func (e *Engine) LoadPreference(ctx context.Context) bool {
	if e.prefs == nil {
		return e.Enabled()
	}

	value, ok, err := e.prefs.Get(ctx, PreferenceKey)
	switch {
	case err != nil:
		slog.WarnContext(ctx, "failed to load reminder preference, defaulting to enabled",
			slog.String("error", err.Error()),
		)
		e.enabled.Store(true)
	case !ok:
		e.enabled.Store(true)
	default:
		e.enabled.Store(value == "true")
	}

	return e.Enabled()
}

// ResetSession forgets every alerted key, as a page reload would.
func (e *Engine) ResetSession(ctx context.Context) int {
	e.pollMu.Lock()
	defer e.pollMu.Unlock()

	cleared := e.gate.Reset()
	if e.metrics != nil {
		e.metrics.RecordSessionReset(ctx, cleared)
	}

	slog.InfoContext(ctx, "reminder session reset",
		slog.Int("cleared_keys", cleared),
	)
	return cleared
}

func (e *Engine) NotifiedCount() int {
	return e.gate.Len()
}

func (e *Engine) requestPermission(ctx context.Context) {
	if e.notifier == nil {
		return
	}
	if e.notifier.Permission(ctx) != domain.PermissionDefault {
		return
	}

	perm := e.notifier.RequestPermission(ctx)
	slog.InfoContext(ctx, "notification permission requested",
		slog.String("permission", string(perm)),
	)
}

func (e *Engine) poll(ctx context.Context, trigger Trigger) PollResult {
	e.pollMu.Lock()
	defer e.pollMu.Unlock()

	ctx, requestID := logging.EnsureRequestID(ctx)
	ctx, span := tracing.StartPollSpan(ctx, string(trigger))
	defer span.End()

	start := e.clock.Now()
	result := PollResult{
		RequestID:  requestID,
		Trigger:    trigger,
		Dispatched: []DispatchedAlert{},
		PolledAt:   start,
	}

	defer func() {
		if e.metrics != nil {
			e.metrics.RecordPoll(ctx, string(trigger), string(result.Outcome), e.clock.Now().Sub(start))
		}
	}()

	if !e.Enabled() {
		result.Outcome = OutcomeDisabled
		slog.DebugContext(ctx, "reminders disabled, skipping poll",
			slog.String("trigger", string(trigger)),
		)
		tracing.RecordPollResult(span, 0, 0, 0, nil)
		return result
	}

	tasks, err := e.tasks.FetchUpcoming(ctx)
	if err != nil {
		result.Outcome = OutcomeFetchFailed
		result.Error = err.Error()
		slog.ErrorContext(ctx, "failed to fetch reminders",
			slog.String("trigger", string(trigger)),
			slog.String("error", err.Error()),
		)
		tracing.RecordPollResult(span, 0, 0, 0, err)
		e.recordPoll(ctx, result)
		return result
	}

	result.Outcome = OutcomeOK
	result.TaskCount = len(tasks)
	if e.metrics != nil {
		e.metrics.RecordTasksFetched(ctx, len(tasks))
	}

	records := make([]domain.AlertDispatchRecord, 0)
	for _, task := range tasks {
		tier, ok := e.gate.Check(task)
		if !ok {
			result.Suppressed++
			if e.metrics != nil {
				e.metrics.RecordAlertSuppressed(ctx, suppressReason(tier))
			}
			continue
		}

		dispatched := e.dispatcher.Dispatch(ctx, task, tier)

		result.Dispatched = append(result.Dispatched, DispatchedAlert{
			TaskID:       task.ID,
			TaskName:     task.Name,
			Tier:         tier.String(),
			MinutesUntil: task.MinutesUntil,
			Key:          task.Key().String(),
			BannerID:     dispatched.BannerID,
		})
		records = append(records, domain.AlertDispatchRecord{
			RequestID:    requestID,
			TaskID:       task.ID.String(),
			Tier:         tier.String(),
			MinutesUntil: task.MinutesUntil,
			Deadline:     task.Deadline,
			Sound:        dispatched.SoundPlayed,
			Overlay:      dispatched.OverlayID != "",
			Notified:     dispatched.NotificationRequested,
			DispatchedAt: e.clock.Now(),
		})
	}

	slog.InfoContext(ctx, "poll completed",
		slog.String("trigger", string(trigger)),
		slog.Int("task_count", result.TaskCount),
		slog.Int("dispatched_count", len(result.Dispatched)),
		slog.Int("suppressed_count", result.Suppressed),
	)

	tracing.RecordPollResult(span, result.TaskCount, len(result.Dispatched), result.Suppressed, nil)

	if e.recorder != nil && len(records) > 0 {
		if err := e.recorder.RecordDispatches(ctx, records); err != nil {
			slog.WarnContext(ctx, "failed to record alert dispatches",
				slog.String("error", err.Error()),
			)
		}
	}
	e.recordPoll(ctx, result)

	return result
}

func (e *Engine) recordPoll(ctx context.Context, result PollResult) {
	if e.recorder == nil {
		return
	}

	err := e.recorder.RecordPoll(ctx, domain.PollResultRecord{
		RequestID:       result.RequestID,
		Outcome:         string(result.Outcome),
		TaskCount:       result.TaskCount,
		DispatchedCount: len(result.Dispatched),
		SuppressedCount: result.Suppressed,
		PolledAt:        result.PolledAt,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to record poll result",
			slog.String("error", err.Error()),
		)
	}
}

func suppressReason(tier domain.Tier) string {
	if tier.IsActionable() {
		return "already_notified"
	}
	return "not_actionable"
}
