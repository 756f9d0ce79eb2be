package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

const insertHistoryQuery = `
INSERT INTO task_history (task_id, user_id, action_type, old_status, new_status, changed_description)
VALUES (?, ?, ?, ?, ?, ?);
`

const selectHistoryByIDQuery = `
SELECT * FROM task_history WHERE id = ?;
`

const listHistoryByTaskQuery = `
SELECT * FROM task_history WHERE task_id = ? ORDER BY id;
`

const listHistoryByUserQuery = `
SELECT * FROM task_history WHERE user_id = ? ORDER BY id;
`

type TaskHistoryRepository struct {
	db *sqlx.DB
}

type historyRow struct {
	ID                 uint64         `db:"id"`
	TaskID             uint64         `db:"task_id"`
	UserID             uint64         `db:"user_id"`
	ActionType         string         `db:"action_type"`
	OldStatus          sql.NullString `db:"old_status"`
	NewStatus          sql.NullString `db:"new_status"`
	ChangedDescription sql.NullString `db:"changed_description"`
	ChangedAt          time.Time      `db:"changed_at"`
}

var _ ports.TaskHistoryRepository = (*TaskHistoryRepository)(nil)

func NewTaskHistoryRepository(db *sqlx.DB) *TaskHistoryRepository {
	return &TaskHistoryRepository{db: db}
}

func (r *TaskHistoryRepository) Create(ctx context.Context, entry domain.TaskHistory) (domain.TaskHistory, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx, insertHistoryQuery,
		entry.TaskID,
		entry.ChangedByID,
		string(entry.Action),
		statusToNullString(entry.OldStatus),
		statusToNullString(entry.NewStatus),
		entry.ChangedDescription,
	)
	if err != nil {
		return domain.TaskHistory{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.TaskHistory{}, err
	}

	var row historyRow
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, selectHistoryByIDQuery, id); err != nil {
		return domain.TaskHistory{}, err
	}
	return mapHistoryRowToDomainHistory(row), nil
}

func (r *TaskHistoryRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.TaskHistory, error) {
	return r.selectHistory(ctx, listHistoryByTaskQuery, taskID)
}

func (r *TaskHistoryRepository) ListByUser(ctx context.Context, userID uint64) ([]domain.TaskHistory, error) {
	return r.selectHistory(ctx, listHistoryByUserQuery, userID)
}

func (r *TaskHistoryRepository) selectHistory(ctx context.Context, query string, arg any) ([]domain.TaskHistory, error) {
	var rows []historyRow
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, arg); err != nil {
		return nil, err
	}

	entries := make([]domain.TaskHistory, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, mapHistoryRowToDomainHistory(row))
	}
	return entries, nil
}

func statusToNullString(status *domain.TaskStatus) sql.NullString {
	if status == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*status), Valid: true}
}

func nullStringToStatus(value sql.NullString) *domain.TaskStatus {
	if !value.Valid {
		return nil
	}
	status := domain.TaskStatus(value.String)
	return &status
}

func mapHistoryRowToDomainHistory(row historyRow) domain.TaskHistory {
	entry := domain.TaskHistory{
		ID:          row.ID,
		TaskID:      row.TaskID,
		ChangedByID: row.UserID,
		Action:      domain.ActionType(row.ActionType),
		OldStatus:   nullStringToStatus(row.OldStatus),
		NewStatus:   nullStringToStatus(row.NewStatus),
		ChangedAt:   row.ChangedAt,
	}

	if row.ChangedDescription.Valid {
		entry.ChangedDescription = row.ChangedDescription.String
	}

	return entry
}
