package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/dto"
	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/mapper"
	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/middleware"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

const dueDateLayout = "2006-01-02"

type TaskHandler struct {
	taskService    ports.TaskService
	historyService ports.TaskHistoryService
}

func NewTaskHandler(taskService ports.TaskService, historyService ports.TaskHistoryService) *TaskHandler {
	return &TaskHandler{taskService: taskService, historyService: historyService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	input, ok := h.bindCreateInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), actor, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) AssignTask(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	input, ok := h.bindCreateInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.Assign(c.Request.Context(), actor, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		respondInvalidID(c)
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input := domain.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			respondInvalidPayload(c)
			return
		}
		input.DueDate = &dueDate
	}

	task, err := h.taskService.Update(c.Request.Context(), actor, taskID, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		respondInvalidID(c)
		return
	}

	task, err := h.taskService.GetByID(c.Request.Context(), actor, taskID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		respondInvalidID(c)
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), actor, taskID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ListAllTasks(c *gin.Context) {
	h.list(c, func(actor domain.User) ([]domain.Task, error) {
		return h.taskService.ListAll(c.Request.Context(), actor, parsePageRequest(c))
	})
}

func (h *TaskHandler) ListCreatedTasks(c *gin.Context) {
	h.list(c, func(actor domain.User) ([]domain.Task, error) {
		return h.taskService.ListCreated(c.Request.Context(), actor, parsePageRequest(c))
	})
}

func (h *TaskHandler) ListAssignedTasks(c *gin.Context) {
	h.list(c, func(actor domain.User) ([]domain.Task, error) {
		return h.taskService.ListAssigned(c.Request.Context(), actor, parsePageRequest(c))
	})
}

func (h *TaskHandler) ListAssignedTasksForUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		respondInvalidID(c)
		return
	}

	h.list(c, func(actor domain.User) ([]domain.Task, error) {
		return h.taskService.ListAssignedFor(c.Request.Context(), actor, userID, parsePageRequest(c))
	})
}

func (h *TaskHandler) SearchTasks(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	filter, ok := h.bindSearchFilter(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.Search(c.Request.Context(), actor, filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTaskHistory(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		respondInvalidID(c)
		return
	}

	history, err := h.historyService.GetTaskHistory(c.Request.Context(), actor, taskID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskHistoryItems(history))
}

func (h *TaskHandler) list(c *gin.Context, fetch func(actor domain.User) ([]domain.Task, error)) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	tasks, err := fetch(actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) bindCreateInput(c *gin.Context) (domain.CreateTaskInput, bool) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return domain.CreateTaskInput{}, false
	}

	dueDate, err := time.Parse(dueDateLayout, req.DueDate)
	if err != nil {
		respondInvalidPayload(c)
		return domain.CreateTaskInput{}, false
	}

	input := domain.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       domain.TaskPriority(req.Priority),
		DueDate:        dueDate,
		AssignedUserID: req.AssignedUserID,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	return input, true
}

// bindSearchFilter reads the combinable query predicates. The assignee
// restriction for non-admins is applied by the service, never here.
func (h *TaskHandler) bindSearchFilter(c *gin.Context) (domain.TaskSearchFilter, bool) {
	var filter domain.TaskSearchFilter

	if title, exists := c.GetQuery("title"); exists {
		filter.Title = &title
	}
	if description, exists := c.GetQuery("desc"); exists {
		filter.Description = &description
	}
	if value, exists := c.GetQuery("status"); exists {
		status := domain.TaskStatus(value)
		switch status {
		case domain.TaskStatusTodo, domain.TaskStatusInProgress, domain.TaskStatusDone:
			filter.Status = &status
		default:
			respondInvalidPayload(c)
			return domain.TaskSearchFilter{}, false
		}
	}
	if value, exists := c.GetQuery("priority"); exists {
		priority := domain.TaskPriority(value)
		switch priority {
		case domain.TaskPriorityLow, domain.TaskPriorityMedium, domain.TaskPriorityHigh:
			filter.Priority = &priority
		default:
			respondInvalidPayload(c)
			return domain.TaskSearchFilter{}, false
		}
	}
	if value, exists := c.GetQuery("from"); exists {
		from, err := time.Parse(dueDateLayout, value)
		if err != nil {
			respondInvalidPayload(c)
			return domain.TaskSearchFilter{}, false
		}
		filter.FromDueDate = &from
	}
	if value, exists := c.GetQuery("to"); exists {
		to, err := time.Parse(dueDateLayout, value)
		if err != nil {
			respondInvalidPayload(c)
			return domain.TaskSearchFilter{}, false
		}
		filter.ToDueDate = &to
	}

	return filter, true
}
