package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/mapper"
	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/middleware"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

type UserHandler struct {
	userService         ports.UserService
	historyService      ports.TaskHistoryService
	notificationService ports.NotificationService
}

func NewUserHandler(
	userService ports.UserService,
	historyService ports.TaskHistoryService,
	notificationService ports.NotificationService,
) *UserHandler {
	return &UserHandler{
		userService:         userService,
		historyService:      historyService,
		notificationService: notificationService,
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	users, err := h.userService.ListAll(c.Request.Context(), actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *UserHandler) GetMyHistory(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	history, err := h.historyService.GetUserHistory(c.Request.Context(), actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskHistoryItems(history))
}

func (h *UserHandler) GetMyNotifications(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	notifications, err := h.notificationService.ListForUser(c.Request.Context(), actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}

func (h *UserHandler) GetUserNotifications(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	userID, ok := parseIDParam(c, "userId")
	if !ok {
		respondInvalidID(c)
		return
	}

	notifications, err := h.notificationService.ListForSpecificUser(c.Request.Context(), actor, userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}

func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	h.transitionNotification(c, h.notificationService.MarkRead)
}

func (h *UserHandler) DeleteNotification(c *gin.Context) {
	h.transitionNotification(c, h.notificationService.Delete)
}

func (h *UserHandler) transitionNotification(c *gin.Context, apply func(context.Context, domain.User, uint64) error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	notificationID, ok := parseIDParam(c, "notificationId")
	if !ok {
		respondInvalidID(c)
		return
	}

	if err := apply(c.Request.Context(), actor, notificationID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
