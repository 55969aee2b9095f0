package authz_test

import (
	"context"
	"testing"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func strPtr(s string) *string { return &s }

func user(id, name string, role models.Role) models.User {
	return models.User{BaseModel: models.BaseModel{ID: id}, Name: name, Role: role}
}

// EngineTestSuite runs the permission matrix against the sample workspace.
type EngineTestSuite struct {
	suite.Suite
	snap   *models.Snapshot
	engine *authz.Engine

	client   authz.Session
	sarah    authz.Session
	mike     authz.Session
	outsider authz.Session
	guest    authz.Session
}

func (suite *EngineTestSuite) SetupTest() {
	suite.snap = models.SnapshotOf(
		[]models.User{
			user("user_1", "Alex Johnson", models.RoleClient),
			user("user_2", "Sarah Miller", models.RoleMember),
			user("user_3", "Mike Chen", models.RoleMember),
			user("user_4", "Nora Outsider", models.RoleMember),
			user("user_5", "Gus Guest", models.RoleGuest),
		},
		[]models.Team{
			{BaseModel: models.BaseModel{ID: "team_1"}, Name: "Development Team", Members: []string{"user_2", "user_3"}},
		},
		[]models.Project{
			{BaseModel: models.BaseModel{ID: "project_1"}, Name: "Website Redesign", TeamID: "team_1", Status: models.ProjectStatusInProgress},
		},
		[]models.Task{
			{BaseModel: models.BaseModel{ID: "task_1"}, Title: "Design Homepage", ProjectID: "project_1", AssigneeID: strPtr("user_2"), Priority: models.TaskPriorityHigh, Status: models.TaskStatusInProgress},
			{BaseModel: models.BaseModel{ID: "task_2"}, Title: "Setup Database", ProjectID: "project_1", AssigneeID: strPtr("user_3"), Priority: models.TaskPriorityMedium, Status: models.TaskStatusOpen},
		},
	)
	suite.engine = authz.NewEngine(suite.snap)

	suite.client = authz.NewSession(suite.snap.Users["user_1"])
	suite.sarah = authz.NewSession(suite.snap.Users["user_2"])
	suite.mike = authz.NewSession(suite.snap.Users["user_3"])
	suite.outsider = authz.NewSession(suite.snap.Users["user_4"])
	suite.guest = authz.NewSession(suite.snap.Users["user_5"])
}

// TestTeamAndProjectRulesAreClientOnly checks every team/project predicate against every role
func (suite *EngineTestSuite) TestTeamAndProjectRulesAreClientOnly() {
	for _, s := range []authz.Session{suite.client, suite.sarah, suite.guest} {
		expected := s.Role == models.RoleClient
		suite.Equal(expected, suite.engine.CanCreateTeam(s), "create team as %s", s.Role)
		suite.Equal(expected, suite.engine.CanEditTeam(s), "edit team as %s", s.Role)
		suite.Equal(expected, suite.engine.CanDeleteTeam(s), "delete team as %s", s.Role)
		suite.Equal(expected, suite.engine.CanCreateProject(s), "create project as %s", s.Role)
		suite.Equal(expected, suite.engine.CanEditProject(s), "edit project as %s", s.Role)
		suite.Equal(expected, suite.engine.CanDeleteProject(s), "delete project as %s", s.Role)
		suite.Equal(expected, suite.engine.CanDeleteTask(s), "delete task as %s", s.Role)
	}
}

// TestCanCreateTask tests team-scoped task creation
func (suite *EngineTestSuite) TestCanCreateTask() {
	testCases := []struct {
		name      string
		session   authz.Session
		projectID string
		expected  bool
	}{
		{name: "client on existing project", session: suite.client, projectID: "project_1", expected: true},
		{name: "client on missing project", session: suite.client, projectID: "project_404", expected: true},
		{name: "member of owning team", session: suite.sarah, projectID: "project_1", expected: true},
		{name: "member outside owning team", session: suite.outsider, projectID: "project_1", expected: false},
		{name: "member on missing project", session: suite.sarah, projectID: "project_404", expected: false},
		{name: "guest", session: suite.guest, projectID: "project_1", expected: false},
		{name: "unknown role", session: authz.Session{UserID: "user_9", Role: "admin"}, projectID: "project_1", expected: false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, suite.engine.CanCreateTask(tc.session, tc.projectID))
		})
	}
}

// TestCanEditTask tests assignee ownership for members
func (suite *EngineTestSuite) TestCanEditTask() {
	task1 := suite.snap.Tasks["task_1"]
	unassigned := models.Task{BaseModel: models.BaseModel{ID: "task_3"}, ProjectID: "project_1"}

	suite.True(suite.engine.CanEditTask(suite.client, &task1))
	suite.True(suite.engine.CanEditTask(suite.client, &unassigned))
	suite.True(suite.engine.CanEditTask(suite.sarah, &task1))
	suite.False(suite.engine.CanEditTask(suite.mike, &task1))
	suite.False(suite.engine.CanEditTask(suite.outsider, &task1))
	suite.False(suite.engine.CanEditTask(suite.sarah, &unassigned))
	suite.False(suite.engine.CanEditTask(suite.guest, &task1))
	suite.False(suite.engine.CanEditTask(suite.sarah, nil))
}

// TestAuthorize tests the error form of the matrix
func (suite *EngineTestSuite) TestAuthorize() {
	task1 := suite.snap.Tasks["task_1"]
	newTask := &models.Task{ProjectID: "project_1"}

	suite.NoError(suite.engine.Authorize(suite.client, authz.ActionDelete, models.CollectionTeams, nil))
	suite.NoError(suite.engine.Authorize(suite.sarah, authz.ActionCreate, models.CollectionTasks, newTask))
	suite.NoError(suite.engine.Authorize(suite.sarah, authz.ActionEdit, models.CollectionTasks, &task1))

	err := suite.engine.Authorize(suite.sarah, authz.ActionDelete, models.CollectionTasks, &task1)
	suite.True(apperrors.IsAuthorization(err))
	suite.Equal("permission denied: member cannot delete task", err.Error())

	err = suite.engine.Authorize(suite.guest, authz.ActionCreate, models.CollectionProjects, nil)
	suite.True(apperrors.IsAuthorization(err))

	err = suite.engine.Authorize(authz.Session{}, authz.ActionCreate, models.CollectionTeams, nil)
	suite.True(apperrors.IsAuthentication(err))

	suite.Equal(authz.Deny, suite.engine.Decide(suite.client, authz.Action("archive"), models.CollectionTeams, nil))
	suite.Equal(authz.Deny, suite.engine.Decide(suite.client, authz.ActionCreate, models.CollectionTasks, nil))
}

// TestUserProfileRules tests self-service profile edits
func (suite *EngineTestSuite) TestUserProfileRules() {
	self := suite.snap.Users["user_5"]
	other := suite.snap.Users["user_2"]

	suite.Equal(authz.Allow, suite.engine.Decide(suite.guest, authz.ActionEdit, models.CollectionUsers, &self))
	suite.Equal(authz.Deny, suite.engine.Decide(suite.guest, authz.ActionEdit, models.CollectionUsers, &other))
	suite.Equal(authz.Deny, suite.engine.Decide(suite.client, authz.ActionEdit, models.CollectionUsers, &other))
	suite.Equal(authz.Allow, suite.engine.Decide(suite.client, authz.ActionCreate, models.CollectionUsers, nil))
	suite.Equal(authz.Deny, suite.engine.Decide(suite.sarah, authz.ActionCreate, models.CollectionUsers, nil))
}

// TestCapabilities tests the summary served to clients
func (suite *EngineTestSuite) TestCapabilities() {
	caps := suite.engine.Capabilities(suite.sarah)
	suite.False(caps.ReadOnly)
	suite.False(caps.CanManageTeams)
	suite.Equal([]string{"project_1"}, caps.TaskProjectIDs)
	suite.Equal([]string{"task_1"}, caps.EditableTaskIDs)

	caps = suite.engine.Capabilities(suite.guest)
	suite.True(caps.ReadOnly)
	suite.Empty(caps.TaskProjectIDs)
	suite.Empty(caps.EditableTaskIDs)

	caps = suite.engine.Capabilities(suite.client)
	suite.True(caps.CanManageTeams)
	suite.True(caps.CanDeleteTasks)
	suite.ElementsMatch([]string{"task_1", "task_2"}, caps.EditableTaskIDs)
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", authz.Allow.String())
	assert.Equal(t, "deny", authz.Deny.String())
}

func TestSessionContext(t *testing.T) {
	_, ok := authz.FromContext(context.Background())
	assert.False(t, ok)

	s := authz.Session{UserID: "user_1", Name: "Alex Johnson", Role: models.RoleClient}
	got, ok := authz.FromContext(authz.WithSession(context.Background(), s))
	require.True(t, ok)
	assert.Equal(t, s, got)

	_, ok = authz.FromContext(authz.WithSession(context.Background(), authz.Session{}))
	assert.False(t, ok)
}

func TestNilSnapshotEngine(t *testing.T) {
	e := authz.NewEngine(nil)
	member := authz.Session{UserID: "user_2", Role: models.RoleMember}
	assert.False(t, e.CanCreateTask(member, "project_1"))
	assert.Empty(t, e.TeamsOf("user_2"))
}
