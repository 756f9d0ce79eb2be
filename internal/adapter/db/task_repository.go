package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

const insertTaskQuery = `
INSERT INTO tasks (title, description, status, priority, due_date, created_by_id, assigned_to_id)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

const selectActiveTaskByIDQuery = `
SELECT * FROM tasks WHERE id = ? AND deleted_at IS NULL;
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, assigned_to_id = ?
WHERE id = ? AND deleted_at IS NULL;
`

const softDeleteTaskQuery = `
UPDATE tasks SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL;
`

const listActiveTasksQuery = `
SELECT * FROM tasks WHERE deleted_at IS NULL ORDER BY id LIMIT ? OFFSET ?;
`

const listActiveCreatedByQuery = `
SELECT * FROM tasks WHERE created_by_id = ? AND deleted_at IS NULL ORDER BY id LIMIT ? OFFSET ?;
`

const listActiveAssignedToQuery = `
SELECT * FROM tasks WHERE assigned_to_id = ? AND deleted_at IS NULL ORDER BY id LIMIT ? OFFSET ?;
`

const listDueBetweenQuery = `
SELECT * FROM tasks
WHERE deleted_at IS NULL AND status <> ? AND due_date BETWEEN ? AND ?
ORDER BY id;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64       `db:"id"`
	Title        string       `db:"title"`
	Description  string       `db:"description"`
	Status       string       `db:"status"`
	Priority     string       `db:"priority"`
	DueDate      time.Time    `db:"due_date"`
	CreatedByID  uint64       `db:"created_by_id"`
	AssignedToID uint64       `db:"assigned_to_id"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx, insertTaskQuery,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.DueDate,
		task.CreatedByID,
		task.AssignedToID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.FindActiveByID(ctx, uint64(id))
}

func (r *TaskRepository) FindActiveByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, selectActiveTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx, updateTaskQuery,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.DueDate,
		task.AssignedToID,
		task.ID,
	)
	if err != nil {
		return domain.Task{}, err
	}
	if _, err := res.RowsAffected(); err != nil {
		return domain.Task{}, err
	}

	// Re-read so the caller sees the refreshed updated_at; a concurrent soft
	// delete surfaces here as ErrTaskNotFound.
	return r.FindActiveByID(ctx, task.ID)
}

func (r *TaskRepository) SoftDelete(ctx context.Context, id uint64, deletedAt time.Time) error {
	res, err := ext(ctx, r.db).ExecContext(ctx, softDeleteTaskQuery, deletedAt, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) ListActive(ctx context.Context, page domain.PageRequest) ([]domain.Task, error) {
	return r.selectTasks(ctx, listActiveTasksQuery, page.Limit(), page.Offset())
}

func (r *TaskRepository) ListActiveCreatedBy(ctx context.Context, userID uint64, page domain.PageRequest) ([]domain.Task, error) {
	return r.selectTasks(ctx, listActiveCreatedByQuery, userID, page.Limit(), page.Offset())
}

func (r *TaskRepository) ListActiveAssignedTo(ctx context.Context, userID uint64, page domain.PageRequest) ([]domain.Task, error) {
	return r.selectTasks(ctx, listActiveAssignedToQuery, userID, page.Limit(), page.Offset())
}

func (r *TaskRepository) ListDueBetween(ctx context.Context, from, to time.Time, excludeStatus domain.TaskStatus) ([]domain.Task, error) {
	return r.selectTasks(ctx, listDueBetweenQuery, string(excludeStatus), from, to)
}

// Search builds one WHERE clause from the combinable filter predicates.
// Substring matches use LIKE BINARY to stay case-sensitive regardless of
// column collation.
func (r *TaskRepository) Search(ctx context.Context, filter domain.TaskSearchFilter) ([]domain.Task, error) {
	conditions := []string{"deleted_at IS NULL"}
	args := []any{}

	if filter.Title != nil {
		conditions = append(conditions, "title LIKE BINARY ?")
		args = append(args, "%"+*filter.Title+"%")
	}
	if filter.Description != nil {
		conditions = append(conditions, "description LIKE BINARY ?")
		args = append(args, "%"+*filter.Description+"%")
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(*filter.Priority))
	}
	if filter.FromDueDate != nil {
		conditions = append(conditions, "due_date >= ?")
		args = append(args, *filter.FromDueDate)
	}
	if filter.ToDueDate != nil {
		conditions = append(conditions, "due_date <= ?")
		args = append(args, *filter.ToDueDate)
	}
	if filter.AssignedToID != nil {
		conditions = append(conditions, "assigned_to_id = ?")
		args = append(args, *filter.AssignedToID)
	}

	query := fmt.Sprintf(
		"SELECT * FROM tasks WHERE %s ORDER BY id;",
		strings.Join(conditions, " AND "),
	)
	return r.selectTasks(ctx, query, args...)
}

func (r *TaskRepository) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Status:       domain.TaskStatus(row.Status),
		Priority:     domain.TaskPriority(row.Priority),
		DueDate:      row.DueDate,
		CreatedByID:  row.CreatedByID,
		AssignedToID: row.AssignedToID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.DeletedAt.Valid {
		value := row.DeletedAt.Time
		task.DeletedAt = &value
	}

	return task
}
