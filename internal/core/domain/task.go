package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID           uint64
	Title        string
	Description  string
	Status       TaskStatus
	Priority     TaskPriority
	DueDate      time.Time
	CreatedByID  uint64
	AssignedToID uint64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type CreateTaskInput struct {
	Title          string
	Description    string
	Status         *TaskStatus
	Priority       TaskPriority
	DueDate        time.Time
	AssignedUserID *uint64
}

// UpdateTaskInput carries partial update semantics: nil fields are left
// untouched on the stored task.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	DueDate     *time.Time
}

// TaskSearchFilter combines independently optional predicates. Substring
// matches are case-sensitive.
type TaskSearchFilter struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	FromDueDate *time.Time
	ToDueDate   *time.Time

	// AssignedToID restricts results to one assignee. The task service sets
	// it for non-admin actors; it is never taken from the caller.
	AssignedToID *uint64
}

type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Offset() int {
	if p.Page <= 0 {
		return 0
	}
	return p.Page * p.Limit()
}

func (p PageRequest) Limit() int {
	if p.Size <= 0 {
		return 10
	}
	return p.Size
}
