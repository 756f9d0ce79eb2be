package http

import (
	"github.com/gin-gonic/gin"

	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/handlers"
	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/middleware"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	authService ports.AuthService,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	v1 := r.Group("/api/v1")
	v1.Use(middleware.LanguageMiddleware())

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	authenticated := v1.Group("")
	authenticated.Use(middleware.AuthMiddleware(authService))

	tasks := authenticated.Group("/tasks")
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.POST("/assign", taskHandler.AssignTask)
		tasks.GET("", taskHandler.ListAllTasks)
		tasks.GET("/created", taskHandler.ListCreatedTasks)
		tasks.GET("/assigned", taskHandler.ListAssignedTasks)
		tasks.GET("/assigned/:userId", taskHandler.ListAssignedTasksForUser)
		tasks.GET("/search", taskHandler.SearchTasks)
		tasks.GET("/:id", taskHandler.GetTaskByID)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.GET("/:id/history", taskHandler.GetTaskHistory)
	}

	users := authenticated.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/me/history", userHandler.GetMyHistory)
		users.GET("/me/notifications", userHandler.GetMyNotifications)
		users.GET("/:userId/notifications", userHandler.GetUserNotifications)
		users.PUT("/me/notifications/:notificationId/read", userHandler.MarkNotificationRead)
		users.DELETE("/me/notifications/:notificationId", userHandler.DeleteNotification)
	}
}
