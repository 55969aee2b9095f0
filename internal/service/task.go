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

// TaskService handles business logic for tasks
type TaskService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(store *store.Store, validator *validator.Validate) *TaskService {
	return &TaskService{
		store:     store,
		validator: validator,
	}
}

// SaveTaskRequest represents the request to create or edit a task. An empty
// ID creates a task; empty priority and status mean Medium and Open.
type SaveTaskRequest struct {
	ID          string              `json:"-"`
	Title       string              `json:"title" validate:"required,max=200" example:"Design Homepage"`
	ProjectID   string              `json:"project_id" validate:"required" example:"project_1"`
	AssigneeID  *string             `json:"assignee_id,omitempty" example:"user_2"`
	Priority    models.TaskPriority `json:"priority,omitempty" validate:"omitempty,task_priority" example:"High"`
	Status      models.TaskStatus   `json:"status,omitempty" validate:"omitempty,task_status" example:"In Progress"`
	Description string              `json:"description,omitempty"`
	DueDate     string              `json:"due_date,omitempty" validate:"omitempty,date" example:"2024-02-15"`
}

// List returns every task
func (s *TaskService) List(ctx context.Context) []models.Task {
	return s.store.ListAll(ctx).TaskList()
}

// Save creates or edits a task. Members may create tasks in projects of
// their teams and edit only tasks assigned to them; an edit that moves the
// task must also target a project of their teams.
func (s *TaskService) Save(ctx context.Context, session authz.Session, req *SaveTaskRequest) (*models.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.ProjectID = strings.TrimSpace(req.ProjectID)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	engine := authz.NewEngine(s.store.ListAll(ctx))
	task := &models.Task{}
	if req.ID == "" {
		task.ProjectID = req.ProjectID
		if err := authorize(ctx, engine, session, authz.ActionCreate, models.CollectionTasks, task); err != nil {
			return nil, err
		}
	} else {
		existing, ok := s.store.Task(req.ID)
		if !ok {
			return nil, apperrors.ErrTaskNotFound
		}
		task = existing
		if err := authorize(ctx, engine, session, authz.ActionEdit, models.CollectionTasks, task); err != nil {
			return nil, err
		}
		if session.Role == models.RoleMember && !engine.CanCreateTask(session, req.ProjectID) {
			return nil, apperrors.NewPermissionDenied(string(session.Role), "move task to", "project "+req.ProjectID)
		}
	}

	task.Title = req.Title
	task.ProjectID = req.ProjectID
	task.AssigneeID = nil
	if req.AssigneeID != nil && strings.TrimSpace(*req.AssigneeID) != "" {
		assignee := strings.TrimSpace(*req.AssigneeID)
		task.AssigneeID = &assignee
	}
	task.Priority = req.Priority
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	task.Status = req.Status
	if task.Status == "" {
		task.Status = models.TaskStatusOpen
	}
	task.Description = req.Description
	task.DueDate = req.DueDate

	stored, err := s.store.Upsert(ctx, task)
	if err != nil {
		return nil, err
	}
	return stored.(*models.Task), nil
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, session authz.Session, id string) error {
	engine := authz.NewEngine(s.store.ListAll(ctx))
	if err := authorize(ctx, engine, session, authz.ActionDelete, models.CollectionTasks, nil); err != nil {
		return err
	}
	return s.store.Delete(ctx, models.CollectionTasks, id)
}
