package mapper

import (
	"time"

	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/dto"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
)

func ToTaskHistoryItems(entries []domain.TaskHistory) []dto.TaskHistoryItem {
	items := make([]dto.TaskHistoryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToTaskHistoryItem(entry))
	}
	return items
}

func ToTaskHistoryItem(entry domain.TaskHistory) dto.TaskHistoryItem {
	item := dto.TaskHistoryItem{
		ID:                 entry.ID,
		TaskID:             entry.TaskID,
		ChangedByID:        entry.ChangedByID,
		Action:             string(entry.Action),
		ChangedDescription: entry.ChangedDescription,
		ChangedAt:          entry.ChangedAt.Format(time.RFC3339),
	}

	if entry.OldStatus != nil {
		value := string(*entry.OldStatus)
		item.OldStatus = &value
	}

	if entry.NewStatus != nil {
		value := string(*entry.NewStatus)
		item.NewStatus = &value
	}

	return item
}
