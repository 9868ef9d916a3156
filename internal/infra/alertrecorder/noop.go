package alertrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.AlertResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordDispatches(_ context.Context, _ []domain.AlertDispatchRecord) error {
	return nil
}

func (n *noopRecorder) RecordPoll(_ context.Context, _ domain.PollResultRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
