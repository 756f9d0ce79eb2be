package mapper

import (
	"time"

	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/dto"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
)

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotificationItem(notification))
	}
	return items
}

func ToNotificationItem(notification domain.Notification) dto.NotificationItem {
	return dto.NotificationItem{
		ID:        notification.ID,
		Message:   notification.Message,
		Type:      string(notification.Type),
		Status:    string(notification.Status),
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
}
