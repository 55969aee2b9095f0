package service

import (
	"context"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SessionServiceInterface defines the interface for session service
type SessionServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) []models.User
	Assignable(ctx context.Context) []models.User
	ResolveOrCreate(ctx context.Context, name string) (*models.User, error)
	UpdateProfile(ctx context.Context, session authz.Session, req *UpdateProfileRequest) (*models.User, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	List(ctx context.Context) []models.Team
	Save(ctx context.Context, session authz.Session, req *SaveTeamRequest) (*models.Team, error)
	Delete(ctx context.Context, session authz.Session, id string) error
	Members(ctx context.Context, id string) ([]models.User, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	List(ctx context.Context) []models.Project
	Save(ctx context.Context, session authz.Session, req *SaveProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, session authz.Session, id string) error
	Tasks(ctx context.Context, projectID string) ([]models.Task, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	List(ctx context.Context) []models.Task
	Save(ctx context.Context, session authz.Session, req *SaveTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, session authz.Session, id string) error
}

// WorkspaceServiceInterface defines the interface for workspace service
type WorkspaceServiceInterface interface {
	Data(ctx context.Context) *DataResponse
	Stats(ctx context.Context, session authz.Session) authz.Stats
	MyTeams(ctx context.Context, session authz.Session) []models.Team
	MyProjects(ctx context.Context, session authz.Session) []models.Project
	MyTasks(ctx context.Context, session authz.Session) []models.Task
	Capabilities(ctx context.Context, session authz.Session) authz.Capabilities
	Delete(ctx context.Context, session authz.Session, collection, id string) error
	Import(ctx context.Context, session authz.Session, req *ImportRequest) (*DataResponse, error)
}

var (
	_ SessionServiceInterface   = (*SessionService)(nil)
	_ UserServiceInterface      = (*UserService)(nil)
	_ TeamServiceInterface      = (*TeamService)(nil)
	_ ProjectServiceInterface   = (*ProjectService)(nil)
	_ TaskServiceInterface      = (*TaskService)(nil)
	_ WorkspaceServiceInterface = (*WorkspaceService)(nil)
)
