package tasksapi

import (
	"context"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=tasksapi

type UpcomingTasksRepository interface {
	FetchUpcoming(ctx context.Context) ([]domain.Task, error)
}
