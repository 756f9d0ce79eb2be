package ports

import (
	"context"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	FindByID(ctx context.Context, id uint64) (domain.Notification, error)
	// ListForUser excludes notifications the user has deleted.
	ListForUser(ctx context.Context, userID uint64) ([]domain.Notification, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.NotificationStatus) error
}

type NotificationService interface {
	// Send persists the notification and then attempts delivery to the mail
	// sink. A delivery failure is returned wrapped in
	// domain.ErrDeliveryFailure; the persisted record stays.
	Send(ctx context.Context, userID uint64, message string, kind domain.NotificationType) error
	ListForUser(ctx context.Context, actor domain.User) ([]domain.Notification, error)
	ListForSpecificUser(ctx context.Context, actor domain.User, userID uint64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actor domain.User, notificationID uint64) error
	Delete(ctx context.Context, actor domain.User, notificationID uint64) error
}

// MailSender is the outbound delivery sink.
type MailSender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
