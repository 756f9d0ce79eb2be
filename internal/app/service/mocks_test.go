package service_test

import (
	"context"
	"time"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// transactorStub runs the function inline. Rollback behavior is a storage
// concern covered by the integration suite.
type transactorStub struct{}

func (transactorStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) FindActiveByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) SoftDelete(ctx context.Context, id uint64, deletedAt time.Time) error {
	args := m.Called(ctx, id, deletedAt)
	return args.Error(0)
}

func (m *taskRepositoryMock) ListActive(ctx context.Context, page domain.PageRequest) ([]domain.Task, error) {
	args := m.Called(ctx, page)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskRepositoryMock) ListActiveCreatedBy(ctx context.Context, userID uint64, page domain.PageRequest) ([]domain.Task, error) {
	args := m.Called(ctx, userID, page)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskRepositoryMock) ListActiveAssignedTo(ctx context.Context, userID uint64, page domain.PageRequest) ([]domain.Task, error) {
	args := m.Called(ctx, userID, page)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskRepositoryMock) Search(ctx context.Context, filter domain.TaskSearchFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskRepositoryMock) ListDueBetween(ctx context.Context, from, to time.Time, excludeStatus domain.TaskStatus) ([]domain.Task, error) {
	args := m.Called(ctx, from, to, excludeStatus)
	return taskSlice(args.Get(0)), args.Error(1)
}

func taskSlice(value any) []domain.Task {
	if value == nil {
		return nil
	}
	return value.([]domain.Task)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *userRepositoryMock) ListAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

type tokenRepositoryMock struct {
	mock.Mock
}

func (m *tokenRepositoryMock) Save(ctx context.Context, token domain.Token) (domain.Token, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Token), args.Error(1)
}

func (m *tokenRepositoryMock) FindByToken(ctx context.Context, raw string) (domain.Token, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(domain.Token), args.Error(1)
}

func (m *tokenRepositoryMock) RevokeAllForUser(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type historyServiceMock struct {
	mock.Mock
}

func (m *historyServiceMock) Log(ctx context.Context, actor domain.User, entry domain.TaskHistoryLog) (domain.TaskHistory, error) {
	args := m.Called(ctx, actor, entry)
	return args.Get(0).(domain.TaskHistory), args.Error(1)
}

func (m *historyServiceMock) GetTaskHistory(ctx context.Context, actor domain.User, taskID uint64) ([]domain.TaskHistory, error) {
	args := m.Called(ctx, actor, taskID)
	return historySlice(args.Get(0)), args.Error(1)
}

func (m *historyServiceMock) GetUserHistory(ctx context.Context, actor domain.User) ([]domain.TaskHistory, error) {
	args := m.Called(ctx, actor)
	return historySlice(args.Get(0)), args.Error(1)
}

type historyRepositoryMock struct {
	mock.Mock
}

func (m *historyRepositoryMock) Create(ctx context.Context, entry domain.TaskHistory) (domain.TaskHistory, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(domain.TaskHistory), args.Error(1)
}

func (m *historyRepositoryMock) ListByTask(ctx context.Context, taskID uint64) ([]domain.TaskHistory, error) {
	args := m.Called(ctx, taskID)
	return historySlice(args.Get(0)), args.Error(1)
}

func (m *historyRepositoryMock) ListByUser(ctx context.Context, userID uint64) ([]domain.TaskHistory, error) {
	args := m.Called(ctx, userID)
	return historySlice(args.Get(0)), args.Error(1)
}

func historySlice(value any) []domain.TaskHistory {
	if value == nil {
		return nil
	}
	return value.([]domain.TaskHistory)
}

type notificationServiceMock struct {
	mock.Mock
}

func (m *notificationServiceMock) Send(ctx context.Context, userID uint64, message string, kind domain.NotificationType) error {
	args := m.Called(ctx, userID, message, kind)
	return args.Error(0)
}

func (m *notificationServiceMock) ListForUser(ctx context.Context, actor domain.User) ([]domain.Notification, error) {
	args := m.Called(ctx, actor)
	return notificationSlice(args.Get(0)), args.Error(1)
}

func (m *notificationServiceMock) ListForSpecificUser(ctx context.Context, actor domain.User, userID uint64) ([]domain.Notification, error) {
	args := m.Called(ctx, actor, userID)
	return notificationSlice(args.Get(0)), args.Error(1)
}

func (m *notificationServiceMock) MarkRead(ctx context.Context, actor domain.User, notificationID uint64) error {
	args := m.Called(ctx, actor, notificationID)
	return args.Error(0)
}

func (m *notificationServiceMock) Delete(ctx context.Context, actor domain.User, notificationID uint64) error {
	args := m.Called(ctx, actor, notificationID)
	return args.Error(0)
}

type notificationRepositoryMock struct {
	mock.Mock
}

func (m *notificationRepositoryMock) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	args := m.Called(ctx, notification)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationRepositoryMock) FindByID(ctx context.Context, id uint64) (domain.Notification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationRepositoryMock) ListForUser(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	return notificationSlice(args.Get(0)), args.Error(1)
}

func (m *notificationRepositoryMock) UpdateStatus(ctx context.Context, id uint64, status domain.NotificationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func notificationSlice(value any) []domain.Notification {
	if value == nil {
		return nil
	}
	return value.([]domain.Notification)
}

type mailSenderMock struct {
	mock.Mock
}

func (m *mailSenderMock) Send(ctx context.Context, recipient, subject, body string) error {
	args := m.Called(ctx, recipient, subject, body)
	return args.Error(0)
}

type tokenIssuerMock struct {
	mock.Mock
}

func (m *tokenIssuerMock) Generate(user domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *tokenIssuerMock) Parse(raw string) (ports.TokenClaims, error) {
	args := m.Called(raw)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}

type passwordHasherMock struct {
	mock.Mock
}

func (m *passwordHasherMock) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *passwordHasherMock) Verify(plain, digest string) bool {
	args := m.Called(plain, digest)
	return args.Bool(0)
}
