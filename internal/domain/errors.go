package domain

import "errors"

var (
	ErrInvalidTask           = errors.New("invalid task")
	ErrPermissionDenied      = errors.New("notification permission not granted")
	ErrPlaybackUnavailable   = errors.New("sound playback unavailable")
	ErrUpcomingTasksResponse = errors.New("unexpected upcoming tasks response")
)
