package domain

import "time"

type ActionType string

const (
	ActionTypeCreated ActionType = "created"
	ActionTypeUpdated ActionType = "updated"
	ActionTypeDeleted ActionType = "deleted"
)

// TaskHistory is an append-only record of one task state change. Entries are
// never updated or deleted.
type TaskHistory struct {
	ID                 uint64
	TaskID             uint64
	ChangedByID        uint64
	Action             ActionType
	OldStatus          *TaskStatus
	NewStatus          *TaskStatus
	ChangedDescription string
	ChangedAt          time.Time
}

type TaskHistoryLog struct {
	TaskID             uint64
	Action             ActionType
	OldStatus          *TaskStatus
	NewStatus          *TaskStatus
	ChangedDescription string
}
