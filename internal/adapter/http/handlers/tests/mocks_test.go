package tests

import (
	"context"

	httpadapter "github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http"
	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/handlers"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// apiFixture wires the full route table against service mocks, with every
// request authenticated as the given actor.
type apiFixture struct {
	tasks         *taskServiceMock
	history       *historyServiceMock
	notifications *notificationServiceMock
	users         *userServiceMock
	router        *gin.Engine
}

func newAPIFixture(actor domain.User) *apiFixture {
	f := &apiFixture{
		tasks:         new(taskServiceMock),
		history:       new(historyServiceMock),
		notifications: new(notificationServiceMock),
		users:         new(userServiceMock),
	}

	router := gin.New()
	httpadapter.RegisterRoutes(
		router,
		identifyingAuthService(actor),
		handlers.NewHealthHandler(nil),
		handlers.NewAuthHandler(new(authServiceMock)),
		handlers.NewTaskHandler(f.tasks, f.history),
		handlers.NewUserHandler(f.users, f.history, f.notifications),
	)
	f.router = router
	return f
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterUserInput) (ports.AuthResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(ports.AuthResult), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, username, password string) (ports.AuthResult, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(ports.AuthResult), args.Error(1)
}

func (m *authServiceMock) Identify(ctx context.Context, rawToken string) (domain.User, error) {
	args := m.Called(ctx, rawToken)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Logout(ctx context.Context, rawToken string) error {
	args := m.Called(ctx, rawToken)
	return args.Error(0)
}

// identifyingAuthService resolves every credential to one fixed actor. It
// backs AuthMiddleware in handler tests that are not about authentication.
func identifyingAuthService(actor domain.User) *authServiceMock {
	m := new(authServiceMock)
	m.On("Identify", mock.Anything, mock.Anything).Return(actor, nil)
	return m
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Create(ctx context.Context, actor domain.User, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Assign(ctx context.Context, actor domain.User, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, actor domain.User, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, actor, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetByID(ctx context.Context, actor domain.User, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, actor, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, actor domain.User, taskID uint64) error {
	args := m.Called(ctx, actor, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) ListAll(ctx context.Context, actor domain.User, page domain.PageRequest) ([]domain.Task, error) {
	args := m.Called(ctx, actor, page)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskServiceMock) ListCreated(ctx context.Context, actor domain.User, page domain.PageRequest) ([]domain.Task, error) {
	args := m.Called(ctx, actor, page)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskServiceMock) ListAssigned(ctx context.Context, actor domain.User, page domain.PageRequest) ([]domain.Task, error) {
	args := m.Called(ctx, actor, page)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskServiceMock) ListAssignedFor(ctx context.Context, actor domain.User, userID uint64, page domain.PageRequest) ([]domain.Task, error) {
	args := m.Called(ctx, actor, userID, page)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskServiceMock) Search(ctx context.Context, actor domain.User, filter domain.TaskSearchFilter) ([]domain.Task, error) {
	args := m.Called(ctx, actor, filter)
	return taskSlice(args.Get(0)), args.Error(1)
}

func taskSlice(value any) []domain.Task {
	if value == nil {
		return nil
	}
	return value.([]domain.Task)
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

func notificationSlice(value any) []domain.Notification {
	if value == nil {
		return nil
	}
	return value.([]domain.Notification)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) ListAll(ctx context.Context, actor domain.User) ([]domain.User, error) {
	args := m.Called(ctx, actor)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}
