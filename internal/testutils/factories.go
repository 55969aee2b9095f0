package testutils

import (
	"time"

	"teamtrack-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		BaseModel: newBase(),
		Name:      "Test User " + uuid.NewString()[:8],
		Role:      models.RoleMember,
	}
}

// WithRole creates a test User with a custom name and role
func (f *UserFactory) WithRole(name string, role models.Role) *models.User {
	user := f.Create()
	user.Name = name
	user.Role = role
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: newBase(),
		Name:      "Test Team",
		Members:   []string{},
	}
}

// WithMembers creates a test Team holding the given user ids
func (f *TeamFactory) WithMembers(memberIDs ...string) *models.Team {
	team := f.Create()
	team.Members = append(team.Members, memberIDs...)
	return team
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel:   newBase(),
		Name:        "Test Project",
		Description: "A test project for testing purposes",
		Status:      models.ProjectStatusPlanned,
	}
}

// WithTeam creates a test Project owned by teamID
func (f *ProjectFactory) WithTeam(teamID string) *models.Project {
	project := f.Create()
	project.TeamID = teamID
	return project
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() *models.Task {
	return &models.Task{
		BaseModel: newBase(),
		Title:     "Test Task",
		Priority:  models.TaskPriorityMedium,
		Status:    models.TaskStatusOpen,
	}
}

// WithProject creates a test Task in projectID, assigned to assigneeID when non-empty
func (f *TaskFactory) WithProject(projectID, assigneeID string) *models.Task {
	task := f.Create()
	task.ProjectID = projectID
	if assigneeID != "" {
		task.AssigneeID = &assigneeID
	}
	return task
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Team    *TeamFactory
	Project *ProjectFactory
	Task    *TaskFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Team:    NewTeamFactory(),
		Project: NewProjectFactory(),
		Task:    NewTaskFactory(),
	}
}

// CreateWorkspace creates a client, a member, a team holding the member, a
// project owned by the team and a task assigned to the member.
func (fs *FactorySet) CreateWorkspace() *models.Snapshot {
	client := fs.User.WithRole("Alex Johnson", models.RoleClient)
	member := fs.User.WithRole("Sarah Miller", models.RoleMember)
	team := fs.Team.WithMembers(member.ID)
	project := fs.Project.WithTeam(team.ID)
	task := fs.Task.WithProject(project.ID, member.ID)

	return models.SnapshotOf(
		[]models.User{*client, *member},
		[]models.Team{*team},
		[]models.Project{*project},
		[]models.Task{*task},
	)
}

func newBase() models.BaseModel {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.BaseModel{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
