package ports

import (
	"context"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
)

type TaskHistoryRepository interface {
	Create(ctx context.Context, entry domain.TaskHistory) (domain.TaskHistory, error)
	ListByTask(ctx context.Context, taskID uint64) ([]domain.TaskHistory, error)
	ListByUser(ctx context.Context, userID uint64) ([]domain.TaskHistory, error)
}

type TaskHistoryService interface {
	// Log appends one immutable entry. The referenced task must exist.
	Log(ctx context.Context, actor domain.User, entry domain.TaskHistoryLog) (domain.TaskHistory, error)
	GetTaskHistory(ctx context.Context, actor domain.User, taskID uint64) ([]domain.TaskHistory, error)
	GetUserHistory(ctx context.Context, actor domain.User) ([]domain.TaskHistory, error)
}
