package domain

import "time"

type NotificationStatus string

const (
	NotificationStatusUnread  NotificationStatus = "unread"
	NotificationStatusRead    NotificationStatus = "read"
	NotificationStatusDeleted NotificationStatus = "deleted"
)

type NotificationType string

const (
	NotificationTypeTaskCreated            NotificationType = "task_created"
	NotificationTypeTaskAssigned           NotificationType = "task_assigned"
	NotificationTypeTaskCompleted          NotificationType = "task_completed"
	NotificationTypeTaskDueSoon            NotificationType = "task_due_soon"
	NotificationTypeRegistrationSuccessful NotificationType = "registration_successful"
	NotificationTypeLoginSuccessful        NotificationType = "login_successful"
)

type Notification struct {
	ID        uint64
	UserID    uint64
	Message   string
	Type      NotificationType
	Status    NotificationStatus
	CreatedAt time.Time
}
