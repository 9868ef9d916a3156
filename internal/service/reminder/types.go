package reminder

import (
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const PreferenceKey = "spookyRemindersEnabled"

const DefaultPollInterval = 60 * time.Second

type Trigger string

const (
	TriggerStartup    Trigger = "startup"
	TriggerInterval   Trigger = "interval"
	TriggerVisibility Trigger = "visibility"
	TriggerManual     Trigger = "manual"
)

type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeDisabled    Outcome = "disabled"
	OutcomeFetchFailed Outcome = "fetch_failed"
)

type DispatchedAlert struct {
	TaskID       domain.TaskID `json:"task_id"`
	TaskName     string        `json:"task_name"`
	Tier         string        `json:"tier"`
	MinutesUntil int           `json:"minutes_until"`
	Key          string        `json:"key"`
	BannerID     string        `json:"banner_id"`
}

type PollResult struct {
	RequestID  string            `json:"request_id"`
	Trigger    Trigger           `json:"trigger"`
	Outcome    Outcome           `json:"outcome"`
	TaskCount  int               `json:"task_count"`
	Suppressed int               `json:"suppressed"`
	Dispatched []DispatchedAlert `json:"dispatched"`
	Error      string            `json:"error,omitempty"`
	PolledAt   time.Time         `json:"polled_at"`
}
