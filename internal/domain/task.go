package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Deadlines without an offset come from servers running with naive datetimes
// and are read as local wall-clock time.
var naiveDeadlineLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDeadline accepts ISO-8601 date-times with or without a UTC offset.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: missing deadline", ErrInvalidTask)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05.999999999Z07:00", s); err == nil {
		return t, nil
	}
	for _, layout := range naiveDeadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: unrecognized deadline %q", ErrInvalidTask, s)
}

// TaskID accepts both numeric and string ids from the tasks API.
type TaskID string

func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: missing task id", ErrInvalidTask)
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTask, err)
		}
		*id = TaskID(s)
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: id %s is not an integer", ErrInvalidTask, data)
	}
	*id = TaskID(strconv.FormatInt(n, 10))
	return nil
}

func (id TaskID) String() string {
	return string(id)
}

// Task is a read-only snapshot of an upcoming task as reported by the server.
type Task struct {
	ID           TaskID    `json:"id"`
	Name         string    `json:"name"`
	Deadline     time.Time `json:"deadline"`
	MinutesUntil int       `json:"minutes_until"`
}

func (t *Task) UnmarshalJSON(data []byte) error {
	type taskFields Task
	var raw struct {
		taskFields
		Deadline *string `json:"deadline"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Deadline == nil {
		return fmt.Errorf("%w: missing deadline", ErrInvalidTask)
	}

	deadline, err := ParseDeadline(*raw.Deadline)
	if err != nil {
		return err
	}

	*t = Task(raw.taskFields)
	t.Deadline = deadline
	return nil
}

// AlertKey identifies one scheduled obligation. A rescheduled task gets a new key.
type AlertKey struct {
	TaskID   TaskID
	Deadline time.Time
}

func (t Task) Key() AlertKey {
	return AlertKey{
		TaskID:   t.ID,
		Deadline: t.Deadline.UTC(),
	}
}

func (k AlertKey) String() string {
	return k.TaskID.String() + "-" + k.Deadline.UTC().Format(time.RFC3339Nano)
}
