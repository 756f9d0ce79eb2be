package dto

type TaskHistoryItem struct {
	ID                 uint64  `json:"id"`
	TaskID             uint64  `json:"task_id"`
	ChangedByID        uint64  `json:"changed_by_id"`
	Action             string  `json:"action"`
	OldStatus          *string `json:"old_status,omitempty"`
	NewStatus          *string `json:"new_status,omitempty"`
	ChangedDescription string  `json:"changed_description,omitempty"`
	ChangedAt          string  `json:"changed_at"`
}
