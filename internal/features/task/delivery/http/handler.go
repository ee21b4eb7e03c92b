package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "taskboard-backend/internal/common/errors"
	"taskboard-backend/internal/common/middleware"
	"taskboard-backend/internal/features/task/models"
	"taskboard-backend/internal/features/task/service"
)

type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(service service.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/stats", h.GetStats)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}

// @Summary List tasks
// @Description Tasks newest first. status and priority are case-insensitive; "all" disables the filter.
// @Description search matches title, description or assignee name.
// @Tags tasks
// @Produce json
// @Param status query string false "TODO, IN_PROGRESS, DONE, CANCELLED or all"
// @Param priority query string false "LOW, MEDIUM, HIGH, URGENT or all"
// @Param search query string false "Free text"
// @Success 200 {array} models.TaskResponse
// @Failure 400 {object} models.ErrorResponse "Unknown status or priority"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query models.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Invalid query parameters"), "")
		return
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), query)
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary Task statistics
// @Description Number of tasks overall and per status
// @Tags tasks
// @Produce json
// @Success 200 {object} models.TaskStats
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tasks/stats [get]
func (h *TaskHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to fetch task stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.TaskResponse
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.service.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to fetch task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary Create task
// @Description Status defaults to TODO and priority to MEDIUM
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body models.CreateTaskRequest true "New task"
// @Success 201 {object} models.TaskResponse
// @Failure 400 {object} models.ErrorResponse "Missing title/description or invalid input"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Invalid request body"), "")
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, task)
}

// @Summary Update task
// @Description Partial update. Absent fields are unchanged; null clears dueDate, assigneeId or projectId
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body models.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} models.TaskResponse
// @Failure 400 {object} models.ErrorResponse "Invalid input"
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Invalid request body"), "")
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary Delete task
// @Description Deletes the task and returns its last state
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.TaskResponse
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, err := h.service.DeleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, task)
}
