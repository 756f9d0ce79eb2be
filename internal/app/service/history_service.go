package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

// TaskHistoryService appends and reads the immutable audit trail. Log is
// called inside the mutation pipeline's transaction so an entry is committed
// iff its triggering mutation is.
type TaskHistoryService struct {
	tasks   ports.TaskRepository
	entries ports.TaskHistoryRepository
}

var _ ports.TaskHistoryService = (*TaskHistoryService)(nil)

func NewTaskHistoryService(tasks ports.TaskRepository, entries ports.TaskHistoryRepository) *TaskHistoryService {
	return &TaskHistoryService{tasks: tasks, entries: entries}
}

func (s *TaskHistoryService) Log(ctx context.Context, actor domain.User, entry domain.TaskHistoryLog) (domain.TaskHistory, error) {
	if _, err := s.tasks.FindActiveByID(ctx, entry.TaskID); err != nil {
		return domain.TaskHistory{}, err
	}

	saved, err := s.entries.Create(ctx, domain.TaskHistory{
		TaskID:             entry.TaskID,
		ChangedByID:        actor.ID,
		Action:             entry.Action,
		OldStatus:          entry.OldStatus,
		NewStatus:          entry.NewStatus,
		ChangedDescription: entry.ChangedDescription,
	})
	if err != nil {
		return domain.TaskHistory{}, err
	}

	zap.L().Info("task history logged",
		zap.Uint64("task_id", saved.TaskID),
		zap.String("action", string(saved.Action)),
		zap.Uint64("changed_by", saved.ChangedByID),
	)
	return saved, nil
}

// GetTaskHistory enforces the same read authorization as reading the task
// itself.
func (s *TaskHistoryService) GetTaskHistory(ctx context.Context, actor domain.User, taskID uint64) ([]domain.TaskHistory, error) {
	task, err := s.tasks.FindActiveByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyTask(actor, task) {
		return nil, domain.ErrForbidden
	}
	return s.entries.ListByTask(ctx, taskID)
}

// GetUserHistory returns every entry the actor made, regardless of who owns
// the tasks now.
func (s *TaskHistoryService) GetUserHistory(ctx context.Context, actor domain.User) ([]domain.TaskHistory, error) {
	return s.entries.ListByUser(ctx, actor.ID)
}
