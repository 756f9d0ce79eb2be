package ports

import (
	"context"
	"time"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	// FindActiveByID returns domain.ErrTaskNotFound for missing or
	// soft-deleted tasks.
	FindActiveByID(ctx context.Context, id uint64) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	SoftDelete(ctx context.Context, id uint64, deletedAt time.Time) error
	ListActive(ctx context.Context, page domain.PageRequest) ([]domain.Task, error)
	ListActiveCreatedBy(ctx context.Context, userID uint64, page domain.PageRequest) ([]domain.Task, error)
	ListActiveAssignedTo(ctx context.Context, userID uint64, page domain.PageRequest) ([]domain.Task, error)
	Search(ctx context.Context, filter domain.TaskSearchFilter) ([]domain.Task, error)
	// ListDueBetween returns active tasks whose due date falls inside the
	// inclusive range and whose status differs from the excluded one.
	ListDueBetween(ctx context.Context, from, to time.Time, excludeStatus domain.TaskStatus) ([]domain.Task, error)
}

type TaskService interface {
	Create(ctx context.Context, actor domain.User, input domain.CreateTaskInput) (domain.Task, error)
	Assign(ctx context.Context, actor domain.User, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, actor domain.User, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, actor domain.User, taskID uint64) (domain.Task, error)
	Delete(ctx context.Context, actor domain.User, taskID uint64) error
	ListAll(ctx context.Context, actor domain.User, page domain.PageRequest) ([]domain.Task, error)
	ListCreated(ctx context.Context, actor domain.User, page domain.PageRequest) ([]domain.Task, error)
	ListAssigned(ctx context.Context, actor domain.User, page domain.PageRequest) ([]domain.Task, error)
	ListAssignedFor(ctx context.Context, actor domain.User, userID uint64, page domain.PageRequest) ([]domain.Task, error)
	Search(ctx context.Context, actor domain.User, filter domain.TaskSearchFilter) ([]domain.Task, error)
}
