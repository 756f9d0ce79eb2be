package service

import (
	"context"
	"fmt"
	"time"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

const mailSubject = "Task Management System Notification"

// NotificationService persists notification records and pushes them to the
// mail sink. Persistence and delivery deliberately do not share a
// transaction: a record that reached the store survives a failed delivery, so
// it can be retried or read in-app (at-least-once stance).
type NotificationService struct {
	notifications ports.NotificationRepository
	users         ports.UserRepository
	mailer        ports.MailSender
	sendTimeout   time.Duration
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(
	notifications ports.NotificationRepository,
	users ports.UserRepository,
	mailer ports.MailSender,
	sendTimeout time.Duration,
) *NotificationService {
	if sendTimeout <= 0 {
		sendTimeout = 5 * time.Second
	}
	return &NotificationService{
		notifications: notifications,
		users:         users,
		mailer:        mailer,
		sendTimeout:   sendTimeout,
	}
}

func (s *NotificationService) Send(ctx context.Context, userID uint64, message string, kind domain.NotificationType) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	saved, err := s.notifications.Create(ctx, domain.Notification{
		UserID:  user.ID,
		Message: message,
		Type:    kind,
		Status:  domain.NotificationStatusUnread,
	})
	if err != nil {
		return err
	}

	// Delivery gets its own deadline so a stalled sink cannot pin down the
	// caller, and no database transaction is held across it.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sendTimeout)
	defer cancel()

	if err := s.mailer.Send(sendCtx, user.Email, mailSubject, saved.Message); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFailure, err)
	}
	return nil
}

func (s *NotificationService) ListForUser(ctx context.Context, actor domain.User) ([]domain.Notification, error) {
	return s.notifications.ListForUser(ctx, actor.ID)
}

func (s *NotificationService) ListForSpecificUser(ctx context.Context, actor domain.User, userID uint64) ([]domain.Notification, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewNotificationsOf(actor, user.ID) {
		return nil, domain.ErrForbidden
	}
	return s.notifications.ListForUser(ctx, user.ID)
}

func (s *NotificationService) MarkRead(ctx context.Context, actor domain.User, notificationID uint64) error {
	return s.transition(ctx, actor, notificationID, domain.NotificationStatusRead)
}

func (s *NotificationService) Delete(ctx context.Context, actor domain.User, notificationID uint64) error {
	return s.transition(ctx, actor, notificationID, domain.NotificationStatusDeleted)
}

// transition enforces ownership and the one-way status machine: once a
// notification leaves unread it never goes back, and deleted is terminal.
func (s *NotificationService) transition(ctx context.Context, actor domain.User, notificationID uint64, target domain.NotificationStatus) error {
	notification, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if !domain.CanTouchNotification(actor, notification) {
		return domain.ErrForbidden
	}

	if notification.Status == target {
		return nil
	}
	if notification.Status == domain.NotificationStatusDeleted {
		// Deleted is terminal; behave as if the record were gone.
		return domain.ErrNotificationNotFound
	}

	return s.notifications.UpdateStatus(ctx, notificationID, target)
}
