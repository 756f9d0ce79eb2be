package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/dto"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/pkg/apierrors"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_ListUsers_OmitsPasswordHashes(t *testing.T) {
	f := newAPIFixture(testAdmin)

	f.users.On("ListAll", mock.Anything, testAdmin).Return([]domain.User{{
		ID:           7,
		FirstName:    "Jane",
		LastName:     "Doe",
		Username:     "jdoe",
		Email:        "jane@example.com",
		PasswordHash: "$2a$digest",
		Role:         domain.UserRoleUser,
		CreatedAt:    time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}}, nil).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/users", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "$2a$digest")

	var got []dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "jdoe", got[0].Username)
	require.Equal(t, "user", got[0].Role)
	f.users.AssertExpectations(t)
}

func TestUserHandler_ListUsers_ForbiddenForNonAdmins(t *testing.T) {
	f := newAPIFixture(testUser)

	f.users.On("ListAll", mock.Anything, testUser).Return(nil, domain.ErrForbidden).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/users", ""))

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserHandler_GetMyHistory(t *testing.T) {
	f := newAPIFixture(testUser)

	f.history.On("GetUserHistory", mock.Anything, testUser).
		Return([]domain.TaskHistory{{
			ID:          1,
			TaskID:      10,
			ChangedByID: 2,
			Action:      domain.ActionTypeCreated,
			ChangedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		}}, nil).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/users/me/history", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskHistoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "created", got[0].Action)
	f.history.AssertExpectations(t)
}

func TestUserHandler_GetMyNotifications(t *testing.T) {
	f := newAPIFixture(testUser)

	f.notifications.On("ListForUser", mock.Anything, testUser).
		Return([]domain.Notification{{
			ID:        1,
			UserID:    2,
			Message:   "Welcome back, Jane!",
			Type:      domain.NotificationTypeLoginSuccessful,
			Status:    domain.NotificationStatusUnread,
			CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		}}, nil).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/users/me/notifications", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.NotificationItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "unread", got[0].Status)
	require.Equal(t, "login_successful", got[0].Type)
	f.notifications.AssertExpectations(t)
}

func TestUserHandler_GetUserNotifications_Authorization(t *testing.T) {
	f := newAPIFixture(testUser)

	f.notifications.On("ListForSpecificUser", mock.Anything, testUser, uint64(3)).
		Return(nil, domain.ErrForbidden).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/users/3/notifications", ""))

	require.Equal(t, http.StatusForbidden, rec.Code)
	f.notifications.AssertExpectations(t)
}

func TestUserHandler_MarkNotificationRead(t *testing.T) {
	f := newAPIFixture(testUser)

	f.notifications.On("MarkRead", mock.Anything, testUser, uint64(5)).Return(nil).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/v1/users/me/notifications/5/read", ""))

	require.Equal(t, http.StatusNoContent, rec.Code)
	f.notifications.AssertExpectations(t)
}

func TestUserHandler_DeleteNotification_NotFound(t *testing.T) {
	f := newAPIFixture(testUser)

	f.notifications.On("Delete", mock.Anything, testUser, uint64(5)).
		Return(domain.ErrNotificationNotFound).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/v1/users/me/notifications/5", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The notification could not be found.", got.ErrDetails.Message)
}

func TestUserHandler_InvalidNotificationID(t *testing.T) {
	f := newAPIFixture(testUser)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/v1/users/me/notifications/abc/read", ""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	f.notifications.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
}
