package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

const insertUserQuery = `
INSERT INTO users (first_name, last_name, username, email, password, role)
VALUES (?, ?, ?, ?, ?, ?);
`

const selectUserByIDQuery = `
SELECT * FROM users WHERE id = ? AND deleted_at IS NULL;
`

const selectUserByUsernameQuery = `
SELECT * FROM users WHERE username = ? AND deleted_at IS NULL;
`

const countUsersByUsernameOrEmailQuery = `
SELECT COUNT(*) FROM users WHERE username = ? OR email = ?;
`

const listUsersQuery = `
SELECT * FROM users WHERE deleted_at IS NULL ORDER BY id;
`

const mysqlDuplicateEntryCode = 1062

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        uint64       `db:"id"`
	FirstName string       `db:"first_name"`
	LastName  string       `db:"last_name"`
	Username  string       `db:"username"`
	Email     string       `db:"email"`
	Password  string       `db:"password"`
	Role      string       `db:"role"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx, insertUserQuery,
		user.FirstName,
		user.LastName,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Role),
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntryCode {
			return domain.User{}, domain.ErrDuplicateUser
		}
		return domain.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.FindByID(ctx, uint64(id))
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.getUser(ctx, selectUserByIDQuery, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getUser(ctx, selectUserByUsernameQuery, username)
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &count, countUsersByUsernameOrEmailQuery, username, email); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, listUsersQuery); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		ID:           row.ID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.Password,
		Role:         domain.UserRole(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.DeletedAt.Valid {
		value := row.DeletedAt.Time
		user.DeletedAt = &value
	}

	return user
}
