package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// WorkspaceService serves the cross-collection views: the full data set,
// dashboard stats, per-user lists, capabilities, bulk import and the
// collection-generic delete.
type WorkspaceService struct {
	store     *store.Store
	teams     *TeamService
	projects  *ProjectService
	tasks     *TaskService
	validator *validator.Validate
	now       func() time.Time
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(store *store.Store, teams *TeamService, projects *ProjectService, tasks *TaskService, validator *validator.Validate) *WorkspaceService {
	return &WorkspaceService{
		store:     store,
		teams:     teams,
		projects:  projects,
		tasks:     tasks,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// DataResponse holds every collection
type DataResponse struct {
	Users    []models.User    `json:"users"`
	Teams    []models.Team    `json:"teams"`
	Projects []models.Project `json:"projects"`
	Tasks    []models.Task    `json:"tasks"`
}

// ImportRequest replaces every collection. Each entity needs an id.
type ImportRequest struct {
	Users    []models.User    `json:"users"`
	Teams    []models.Team    `json:"teams"`
	Projects []models.Project `json:"projects"`
	Tasks    []models.Task    `json:"tasks"`
}

// Data returns every collection
func (s *WorkspaceService) Data(ctx context.Context) *DataResponse {
	snap := s.store.ListAll(ctx)
	return &DataResponse{
		Users:    snap.UserList(),
		Teams:    snap.TeamList(),
		Projects: snap.ProjectList(),
		Tasks:    snap.TaskList(),
	}
}

// Stats returns the dashboard counters for session
func (s *WorkspaceService) Stats(ctx context.Context, session authz.Session) authz.Stats {
	return s.engine(ctx).Stats(session)
}

// MyTeams returns the teams the session user belongs to
func (s *WorkspaceService) MyTeams(ctx context.Context, session authz.Session) []models.Team {
	return s.engine(ctx).TeamsOf(session.UserID)
}

// MyProjects returns the projects owned by the session user's teams
func (s *WorkspaceService) MyProjects(ctx context.Context, session authz.Session) []models.Project {
	return s.engine(ctx).AccessibleProjects(session.UserID)
}

// MyTasks returns the tasks assigned to the session user
func (s *WorkspaceService) MyTasks(ctx context.Context, session authz.Session) []models.Task {
	return s.engine(ctx).TasksAssignedTo(session.UserID)
}

// Capabilities returns what session may do
func (s *WorkspaceService) Capabilities(ctx context.Context, session authz.Session) authz.Capabilities {
	return s.engine(ctx).Capabilities(session)
}

// Delete removes one entity from any collection, applying that collection's
// delete rule
func (s *WorkspaceService) Delete(ctx context.Context, session authz.Session, collection, id string) error {
	c, err := models.ParseCollection(collection)
	if err != nil {
		return apperrors.NewValidationError("collection", err.Error())
	}

	switch c {
	case models.CollectionTeams:
		return s.teams.Delete(ctx, session, id)
	case models.CollectionProjects:
		return s.projects.Delete(ctx, session, id)
	case models.CollectionTasks:
		return s.tasks.Delete(ctx, session, id)
	case models.CollectionUsers:
		if err := authorize(ctx, s.engine(ctx), session, authz.ActionDelete, models.CollectionUsers, nil); err != nil {
			return err
		}
		if id == session.UserID {
			return apperrors.NewValidationError("id", "cannot delete the current user")
		}
		return s.store.Delete(ctx, models.CollectionUsers, id)
	}
	return apperrors.ErrUnknownCollection
}

// Import replaces every collection with the contents of req. Only clients may
// import.
func (s *WorkspaceService) Import(ctx context.Context, session authz.Session, req *ImportRequest) (*DataResponse, error) {
	if session.IsZero() {
		return nil, apperrors.ErrSessionRequired
	}
	if session.Role != models.RoleClient {
		logger.WithContext(ctx).Info("permission denied: import")
		return nil, apperrors.NewPermissionDenied(string(session.Role), "import", "data")
	}

	snap, err := s.importSnapshot(req)
	if err != nil {
		return nil, err
	}
	if err := s.store.Replace(ctx, snap); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"users":    len(snap.Users),
		"teams":    len(snap.Teams),
		"projects": len(snap.Projects),
		"tasks":    len(snap.Tasks),
	}).Info("imported data")
	return s.Data(ctx), nil
}

func (s *WorkspaceService) importSnapshot(req *ImportRequest) (*models.Snapshot, error) {
	now := s.now()
	seen := make(map[string]map[string]struct{}, 4)
	stamp := func(kind string, i int, base *models.BaseModel) error {
		base.ID = strings.TrimSpace(base.ID)
		if base.ID == "" {
			return apperrors.NewValidationError(fmt.Sprintf("%s[%d].id", kind, i), "is required")
		}
		if seen[kind] == nil {
			seen[kind] = make(map[string]struct{})
		}
		if _, dup := seen[kind][base.ID]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("%s[%d].id", kind, i), "is duplicated")
		}
		seen[kind][base.ID] = struct{}{}
		if base.CreatedAt.IsZero() {
			base.CreatedAt = now
		}
		if base.UpdatedAt.IsZero() {
			base.UpdatedAt = base.CreatedAt
		}
		return nil
	}

	names := make(map[string]struct{}, len(req.Users))
	for i := range req.Users {
		u := &req.Users[i]
		if err := stamp("users", i, &u.BaseModel); err != nil {
			return nil, err
		}
		key := strings.ToLower(strings.TrimSpace(u.Name))
		if key == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("users[%d].name", i), "is required")
		}
		if _, dup := names[key]; dup {
			return nil, apperrors.NewValidationError(fmt.Sprintf("users[%d].name", i), "is duplicated")
		}
		names[key] = struct{}{}
		role, err := models.ParseRole(string(u.Role))
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("users[%d].role", i), err.Error())
		}
		u.Role = role
	}
	for i := range req.Teams {
		t := &req.Teams[i]
		if err := stamp("teams", i, &t.BaseModel); err != nil {
			return nil, err
		}
		if strings.TrimSpace(t.Name) == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("teams[%d].name", i), "is required")
		}
		t.Members = dedupe(t.Members)
	}
	for i := range req.Projects {
		p := &req.Projects[i]
		if err := stamp("projects", i, &p.BaseModel); err != nil {
			return nil, err
		}
		if p.Status == "" {
			p.Status = models.ProjectStatusPlanned
		}
		if err := validateRequest(s.validator, &SaveProjectRequest{Name: p.Name, TeamID: p.TeamID, Status: p.Status, Deadline: p.Deadline}); err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("projects[%d]", i), err.Error())
		}
	}
	for i := range req.Tasks {
		t := &req.Tasks[i]
		if err := stamp("tasks", i, &t.BaseModel); err != nil {
			return nil, err
		}
		if t.Priority == "" {
			t.Priority = models.TaskPriorityMedium
		}
		if t.Status == "" {
			t.Status = models.TaskStatusOpen
		}
		if err := validateRequest(s.validator, &SaveTaskRequest{Title: t.Title, ProjectID: t.ProjectID, Priority: t.Priority, Status: t.Status, DueDate: t.DueDate}); err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("tasks[%d]", i), err.Error())
		}
	}

	return models.SnapshotOf(req.Users, req.Teams, req.Projects, req.Tasks), nil
}

func (s *WorkspaceService) engine(ctx context.Context) *authz.Engine {
	return authz.NewEngine(s.store.ListAll(ctx))
}
