package handlers

import (
	"net/http"

	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects handles GET /projects
// @Summary List all projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project "Successfully retrieved projects"
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.projectService.List(c.Request.Context()))
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.SaveProjectRequest true "Project data"
// @Success 201 {object} models.Project "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Save(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body service.SaveProjectRequest true "Project data"
// @Success 200 {object} models.Project "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.ID = c.Param("id")

	project, err := h.projectService.Save(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete a project
// @Description Delete a project. Its tasks are kept.
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204 "Project deleted"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProjectTasks handles GET /projects/:id/tasks
// @Summary List the tasks of a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.Task "Successfully retrieved tasks"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/tasks [get]
func (h *ProjectHandler) GetProjectTasks(c *gin.Context) {
	tasks, err := h.projectService.Tasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
