package handlers

import (
	"net/http"

	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks handles GET /tasks
// @Summary List all tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task "Successfully retrieved tasks"
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.taskService.List(c.Request.Context()))
}

// CreateTask handles POST /tasks
// @Summary Create a new task
// @Description Clients may create tasks anywhere; members only in projects of their teams.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.SaveTaskRequest true "Task data"
// @Success 201 {object} models.Task "Successfully created task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.SaveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.Save(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks/:id
// @Summary Update a task
// @Description Clients may edit any task; members only tasks assigned to them.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body service.SaveTaskRequest true "Task data"
// @Success 200 {object} models.Task "Successfully updated task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.SaveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.ID = c.Param("id")

	task, err := h.taskService.Save(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204 "Task deleted"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
