package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

// TaskService orchestrates every task mutation: authorization check, state
// transition, audit entry and notification. The entity write and its history
// entry always share one transaction; notifications are dispatched after
// commit and never roll a mutation back.
type TaskService struct {
	tasks      ports.TaskRepository
	users      ports.UserRepository
	history    ports.TaskHistoryService
	notifier   ports.NotificationService
	transactor ports.Transactor
	now        func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(
	tasks ports.TaskRepository,
	users ports.UserRepository,
	history ports.TaskHistoryService,
	notifier ports.NotificationService,
	transactor ports.Transactor,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		users:      users,
		history:    history,
		notifier:   notifier,
		transactor: transactor,
		now:        time.Now,
	}
}

func (s *TaskService) Create(ctx context.Context, actor domain.User, input domain.CreateTaskInput) (domain.Task, error) {
	if err := s.validateCreateInput(input); err != nil {
		return domain.Task{}, err
	}

	status := domain.TaskStatusTodo
	if input.Status != nil {
		status = *input.Status
	}

	task := domain.Task{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Status:       status,
		Priority:     input.Priority,
		DueDate:      input.DueDate,
		CreatedByID:  actor.ID,
		AssignedToID: actor.ID,
	}

	saved, err := s.createWithHistory(ctx, actor, task)
	if err != nil {
		return domain.Task{}, err
	}

	message := "A new task \"" + saved.Title + "\" has been created."
	notifyBestEffort(ctx, s.notifier, saved.AssignedToID, message, domain.NotificationTypeTaskCreated)

	return saved, nil
}

func (s *TaskService) Assign(ctx context.Context, actor domain.User, input domain.CreateTaskInput) (domain.Task, error) {
	if !domain.CanAssignTasks(actor) {
		return domain.Task{}, domain.ErrForbidden
	}
	if err := s.validateCreateInput(input); err != nil {
		return domain.Task{}, err
	}
	if input.AssignedUserID == nil {
		return domain.Task{}, fmt.Errorf("%w: assigned user id is required", domain.ErrValidation)
	}

	assignee, err := s.users.FindByID(ctx, *input.AssignedUserID)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Status:       domain.TaskStatusTodo,
		Priority:     input.Priority,
		DueDate:      input.DueDate,
		CreatedByID:  actor.ID,
		AssignedToID: assignee.ID,
	}

	saved, err := s.createWithHistory(ctx, actor, task)
	if err != nil {
		return domain.Task{}, err
	}

	message := "You have been assigned a new task: \"" + saved.Title + "\"."
	notifyBestEffort(ctx, s.notifier, assignee.ID, message, domain.NotificationTypeTaskAssigned)

	return saved, nil
}

func (s *TaskService) Update(ctx context.Context, actor domain.User, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.tasks.FindActiveByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !domain.CanModifyTask(actor, task) {
		return domain.Task{}, domain.ErrForbidden
	}

	oldStatus := task.Status
	if err := applyTaskUpdate(&task, input); err != nil {
		return domain.Task{}, err
	}

	changedDescription := ""
	if input.Description != nil {
		changedDescription = *input.Description
	}

	var saved domain.Task
	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		var txErr error
		saved, txErr = s.tasks.Update(ctx, task)
		if txErr != nil {
			return txErr
		}

		newStatus := saved.Status
		_, txErr = s.history.Log(ctx, actor, domain.TaskHistoryLog{
			TaskID:             saved.ID,
			Action:             domain.ActionTypeUpdated,
			OldStatus:          &oldStatus,
			NewStatus:          &newStatus,
			ChangedDescription: changedDescription,
		})
		return txErr
	})
	if err != nil {
		return domain.Task{}, err
	}

	if saved.Status == domain.TaskStatusDone {
		message := "Good work! Task \"" + saved.Title + "\" has been completed!"
		notifyBestEffort(ctx, s.notifier, saved.AssignedToID, message, domain.NotificationTypeTaskCompleted)
	}

	return saved, nil
}

func (s *TaskService) GetByID(ctx context.Context, actor domain.User, taskID uint64) (domain.Task, error) {
	task, err := s.tasks.FindActiveByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !domain.CanModifyTask(actor, task) {
		return domain.Task{}, domain.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, actor domain.User, taskID uint64) error {
	task, err := s.tasks.FindActiveByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !domain.CanModifyTask(actor, task) {
		return domain.ErrForbidden
	}

	oldStatus := task.Status
	return s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		// History first: the audit recorder requires a live task, and the
		// soft delete in this same transaction hides it.
		_, err := s.history.Log(ctx, actor, domain.TaskHistoryLog{
			TaskID:    task.ID,
			Action:    domain.ActionTypeDeleted,
			OldStatus: &oldStatus,
		})
		if err != nil {
			return err
		}
		return s.tasks.SoftDelete(ctx, task.ID, s.now())
	})
}

func (s *TaskService) ListAll(ctx context.Context, actor domain.User, page domain.PageRequest) ([]domain.Task, error) {
	if !domain.CanListAllTasks(actor) {
		return nil, domain.ErrForbidden
	}
	return s.tasks.ListActive(ctx, page)
}

func (s *TaskService) ListCreated(ctx context.Context, actor domain.User, page domain.PageRequest) ([]domain.Task, error) {
	return s.tasks.ListActiveCreatedBy(ctx, actor.ID, page)
}

func (s *TaskService) ListAssigned(ctx context.Context, actor domain.User, page domain.PageRequest) ([]domain.Task, error) {
	return s.tasks.ListActiveAssignedTo(ctx, actor.ID, page)
}

func (s *TaskService) ListAssignedFor(ctx context.Context, actor domain.User, userID uint64, page domain.PageRequest) ([]domain.Task, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewTasksOf(actor, user.ID) {
		return nil, domain.ErrForbidden
	}
	return s.tasks.ListActiveAssignedTo(ctx, user.ID, page)
}

// Search applies the caller's combinable predicates. Non-admin actors are
// silently restricted to their own assignments; the restriction overwrites
// whatever the caller put in AssignedToID.
func (s *TaskService) Search(ctx context.Context, actor domain.User, filter domain.TaskSearchFilter) ([]domain.Task, error) {
	filter.AssignedToID = nil
	if !actor.IsAdmin() {
		actorID := actor.ID
		filter.AssignedToID = &actorID
	}
	return s.tasks.Search(ctx, filter)
}

func (s *TaskService) createWithHistory(ctx context.Context, actor domain.User, task domain.Task) (domain.Task, error) {
	var saved domain.Task
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		var txErr error
		saved, txErr = s.tasks.Create(ctx, task)
		if txErr != nil {
			return txErr
		}

		newStatus := saved.Status
		_, txErr = s.history.Log(ctx, actor, domain.TaskHistoryLog{
			TaskID:    saved.ID,
			Action:    domain.ActionTypeCreated,
			NewStatus: &newStatus,
		})
		return txErr
	})
	if err != nil {
		return domain.Task{}, err
	}
	return saved, nil
}

func (s *TaskService) validateCreateInput(input domain.CreateTaskInput) error {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case strings.TrimSpace(input.Description) == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	case input.Priority == "":
		return fmt.Errorf("%w: priority is required", domain.ErrValidation)
	case input.DueDate.IsZero():
		return fmt.Errorf("%w: due date is required", domain.ErrValidation)
	case !input.DueDate.After(s.now()):
		return fmt.Errorf("%w: due date must be in the future", domain.ErrValidation)
	}
	return nil
}

func applyTaskUpdate(task *domain.Task, input domain.UpdateTaskInput) error {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	return nil
}
