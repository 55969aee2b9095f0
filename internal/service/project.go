package service

import (
	"context"
	"strings"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(store *store.Store, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		store:     store,
		validator: validator,
	}
}

// SaveProjectRequest represents the request to create or edit a project. An
// empty ID creates a project; an empty status means Planned.
type SaveProjectRequest struct {
	ID          string               `json:"-"`
	Name        string               `json:"name" validate:"required,max=200" example:"Website Redesign"`
	TeamID      string               `json:"team_id" validate:"required" example:"team_1"`
	Description string               `json:"description,omitempty"`
	Status      models.ProjectStatus `json:"status,omitempty" validate:"omitempty,project_status" example:"In Progress"`
	Deadline    string               `json:"deadline,omitempty" validate:"omitempty,date" example:"2024-03-15"`
}

// List returns every project
func (s *ProjectService) List(ctx context.Context) []models.Project {
	return s.store.ListAll(ctx).ProjectList()
}

// Save creates or edits a project
func (s *ProjectService) Save(ctx context.Context, session authz.Session, req *SaveProjectRequest) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.TeamID = strings.TrimSpace(req.TeamID)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	engine := authz.NewEngine(s.store.ListAll(ctx))
	project := &models.Project{}
	action := authz.ActionCreate
	if req.ID != "" {
		existing, ok := s.store.Project(req.ID)
		if !ok {
			return nil, apperrors.ErrProjectNotFound
		}
		project = existing
		action = authz.ActionEdit
	}
	if err := authorize(ctx, engine, session, action, models.CollectionProjects, project); err != nil {
		return nil, err
	}

	project.Name = req.Name
	project.TeamID = req.TeamID
	project.Description = req.Description
	project.Status = req.Status
	if project.Status == "" {
		project.Status = models.ProjectStatusPlanned
	}
	project.Deadline = req.Deadline

	stored, err := s.store.Upsert(ctx, project)
	if err != nil {
		return nil, err
	}
	return stored.(*models.Project), nil
}

// Delete removes a project. Its tasks are left in place.
func (s *ProjectService) Delete(ctx context.Context, session authz.Session, id string) error {
	engine := authz.NewEngine(s.store.ListAll(ctx))
	if err := authorize(ctx, engine, session, authz.ActionDelete, models.CollectionProjects, nil); err != nil {
		return err
	}
	return s.store.Delete(ctx, models.CollectionProjects, id)
}

// Tasks returns the tasks of a project
func (s *ProjectService) Tasks(ctx context.Context, projectID string) ([]models.Task, error) {
	snap := s.store.ListAll(ctx)
	if _, ok := snap.Projects[projectID]; !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	return authz.NewEngine(snap).TasksOf(projectID), nil
}
