package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

const insertNotificationQuery = `
INSERT INTO notifications (user_id, message, type, status)
VALUES (?, ?, ?, ?);
`

const selectNotificationByIDQuery = `
SELECT * FROM notifications WHERE id = ?;
`

const listNotificationsForUserQuery = `
SELECT * FROM notifications WHERE user_id = ? AND status <> ? ORDER BY id;
`

const updateNotificationStatusQuery = `
UPDATE notifications SET status = ? WHERE id = ?;
`

type NotificationRepository struct {
	db *sqlx.DB
}

type notificationRow struct {
	ID        uint64    `db:"id"`
	UserID    uint64    `db:"user_id"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx, insertNotificationQuery,
		notification.UserID,
		notification.Message,
		string(notification.Type),
		string(notification.Status),
	)
	if err != nil {
		return domain.Notification{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Notification{}, err
	}

	return r.FindByID(ctx, uint64(id))
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint64) (domain.Notification, error) {
	var row notificationRow
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, selectNotificationByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Notification{}, domain.ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}
	return mapNotificationRowToDomain(row), nil
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	var rows []notificationRow
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, listNotificationsForUserQuery,
		userID, string(domain.NotificationStatusDeleted))
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, mapNotificationRowToDomain(row))
	}
	return notifications, nil
}

func (r *NotificationRepository) UpdateStatus(ctx context.Context, id uint64, status domain.NotificationStatus) error {
	// MySQL reports zero affected rows when the status already matches, so
	// existence is the caller's concern.
	_, err := ext(ctx, r.db).ExecContext(ctx, updateNotificationStatusQuery, string(status), id)
	return err
}

func mapNotificationRowToDomain(row notificationRow) domain.Notification {
	return domain.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		Message:   row.Message,
		Type:      domain.NotificationType(row.Type),
		Status:    domain.NotificationStatus(row.Status),
		CreatedAt: row.CreatedAt,
	}
}
