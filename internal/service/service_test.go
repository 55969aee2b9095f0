package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"
	"teamtrack-backend/internal/store"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type stubIssuer struct {
	err error
}

func (s *stubIssuer) IssueToken(user *models.User) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + user.ID, nil
}

func (s *stubIssuer) ExpiresIn() int64 { return 3600 }

func strPtr(s string) *string { return &s }

// serviceSuite wires every service over a store seeded with the sample workspace.
type serviceSuite struct {
	suite.Suite
	ctx       context.Context
	persister *store.MemoryPersister
	store     *store.Store
	issuer    *stubIssuer

	sessions  *service.SessionService
	users     *service.UserService
	teams     *service.TeamService
	projects  *service.ProjectService
	tasks     *service.TaskService
	workspace *service.WorkspaceService

	client authz.Session
	sarah  authz.Session
	mike   authz.Session
	guest  authz.Session
}

func sampleSnapshot() *models.Snapshot {
	at := func(day, hour int) models.BaseModel {
		ts := time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
		return models.BaseModel{CreatedAt: ts, UpdatedAt: ts}
	}
	base := func(id string, day, hour int) models.BaseModel {
		b := at(day, hour)
		b.ID = id
		return b
	}
	return models.SnapshotOf(
		[]models.User{
			{BaseModel: base("user_1", 15, 10), Name: "Alex Johnson", Role: models.RoleClient},
			{BaseModel: base("user_2", 15, 10), Name: "Sarah Miller", Role: models.RoleMember},
			{BaseModel: base("user_3", 15, 10), Name: "Mike Chen", Role: models.RoleMember},
			{BaseModel: base("user_4", 15, 10), Name: "Gus Guest", Role: models.RoleGuest},
		},
		[]models.Team{
			{BaseModel: base("team_1", 15, 10), Name: "Development Team", Members: []string{"user_2", "user_3"}},
		},
		[]models.Project{
			{BaseModel: base("project_1", 20, 9), Name: "Website Redesign", TeamID: "team_1", Status: models.ProjectStatusInProgress, Deadline: "2024-03-15"},
		},
		[]models.Task{
			{BaseModel: base("task_1", 21, 11), Title: "Design Homepage", ProjectID: "project_1", AssigneeID: strPtr("user_2"), Priority: models.TaskPriorityHigh, Status: models.TaskStatusInProgress},
			{BaseModel: base("task_2", 22, 15), Title: "Setup Database", ProjectID: "project_1", AssigneeID: strPtr("user_3"), Priority: models.TaskPriorityMedium, Status: models.TaskStatusOpen},
		},
	)
}

func (suite *serviceSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.persister = store.NewMemoryPersister(sampleSnapshot())

	n := 0
	s, err := store.New(suite.ctx, suite.persister, store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("gen_%d", n)
	}))
	suite.Require().NoError(err)
	suite.store = s
	suite.issuer = &stubIssuer{}

	v := service.NewValidator()
	suite.sessions = service.NewSessionService(s, suite.issuer, v)
	suite.users = service.NewUserService(s, v)
	suite.teams = service.NewTeamService(s, suite.users, v)
	suite.projects = service.NewProjectService(s, v)
	suite.tasks = service.NewTaskService(s, v)
	suite.workspace = service.NewWorkspaceService(s, suite.teams, suite.projects, suite.tasks, v)

	suite.client = suite.sessionFor("user_1")
	suite.sarah = suite.sessionFor("user_2")
	suite.mike = suite.sessionFor("user_3")
	suite.guest = suite.sessionFor("user_4")
}

func (suite *serviceSuite) sessionFor(id string) authz.Session {
	u, ok := suite.store.User(id)
	suite.Require().True(ok, "user %s", id)
	return authz.NewSession(*u)
}

// ServiceTestSuite covers the session, user, team, project and task services.
type ServiceTestSuite struct {
	serviceSuite
}

// TestLoginExistingNameDifferentCase tests that login resolves names case-insensitively
func (suite *ServiceTestSuite) TestLoginExistingNameDifferentCase() {
	resp, err := suite.sessions.Login(suite.ctx, &service.LoginRequest{Name: "  sarah MILLER ", Role: models.RoleMember})
	suite.Require().NoError(err)

	suite.Equal("user_2", resp.User.ID)
	suite.Equal("Sarah Miller", resp.User.Name)
	suite.Equal("token-for-user_2", resp.AccessToken)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(int64(3600), resp.ExpiresIn)
	suite.Len(suite.store.ListAll(suite.ctx).Users, 4)
}

// TestLoginUpdatesRole tests that a login with another role changes the stored role
func (suite *ServiceTestSuite) TestLoginUpdatesRole() {
	resp, err := suite.sessions.Login(suite.ctx, &service.LoginRequest{Name: "Mike Chen", Role: "Client"})
	suite.Require().NoError(err)

	suite.Equal("user_3", resp.User.ID)
	suite.Equal(models.RoleClient, resp.User.Role)
	u, _ := suite.store.User("user_3")
	suite.Equal(models.RoleClient, u.Role)
}

// TestLoginCreatesUser tests that an unknown name creates a user with the requested role
func (suite *ServiceTestSuite) TestLoginCreatesUser() {
	resp, err := suite.sessions.Login(suite.ctx, &service.LoginRequest{Name: "Nora New", Role: models.RoleGuest})
	suite.Require().NoError(err)

	suite.Equal("gen_1", resp.User.ID)
	suite.Equal(models.RoleGuest, resp.User.Role)
	suite.False(resp.User.CreatedAt.IsZero())
}

// TestLoginValidation tests rejected login input
func (suite *ServiceTestSuite) TestLoginValidation() {
	_, err := suite.sessions.Login(suite.ctx, &service.LoginRequest{Name: "   ", Role: models.RoleMember})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.sessions.Login(suite.ctx, &service.LoginRequest{Name: "Someone", Role: "admin"})
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "role")
}

// TestLoginTokenFailure tests that issuer errors are reported
func (suite *ServiceTestSuite) TestLoginTokenFailure() {
	suite.issuer.err = errors.New("signing key unavailable")

	_, err := suite.sessions.Login(suite.ctx, &service.LoginRequest{Name: "Sarah Miller", Role: models.RoleMember})
	suite.Error(err)
	suite.Contains(err.Error(), "failed to issue token")
}

// TestResolveOrCreate tests name resolution
func (suite *ServiceTestSuite) TestResolveOrCreate() {
	user, err := suite.users.ResolveOrCreate(suite.ctx, "sarah miller")
	suite.Require().NoError(err)
	suite.Equal("user_2", user.ID)

	user, err = suite.users.ResolveOrCreate(suite.ctx, "New Name")
	suite.Require().NoError(err)
	suite.Equal("gen_1", user.ID)
	suite.Equal(models.RoleMember, user.Role)

	again, err := suite.users.ResolveOrCreate(suite.ctx, "NEW NAME")
	suite.Require().NoError(err)
	suite.Equal(user.ID, again.ID)
}

// TestUpdateProfile tests self-service profile edits
func (suite *ServiceTestSuite) TestUpdateProfile() {
	user, err := suite.users.UpdateProfile(suite.ctx, suite.guest, &service.UpdateProfileRequest{Name: "Gus Member", Role: models.RoleMember})
	suite.Require().NoError(err)
	suite.Equal("user_4", user.ID)
	suite.Equal("Gus Member", user.Name)
	suite.Equal(models.RoleMember, user.Role)

	_, err = suite.users.UpdateProfile(suite.ctx, suite.guest, &service.UpdateProfileRequest{Name: "sarah miller", Role: models.RoleMember})
	suite.ErrorIs(err, apperrors.ErrUserExists)

	_, err = suite.users.UpdateProfile(suite.ctx, authz.Session{UserID: "user_gone", Role: models.RoleMember}, &service.UpdateProfileRequest{Name: "Ghost", Role: models.RoleMember})
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestAssignableExcludesGuests tests the assignee list
func (suite *ServiceTestSuite) TestAssignableExcludesGuests() {
	users := suite.users.Assignable(suite.ctx)
	suite.Len(users, 3)
	suite.Len(suite.users.List(suite.ctx), 4)
}

// TestTeamScenario follows a team from creation through task ownership
func (suite *ServiceTestSuite) TestTeamScenario() {
	ops, err := suite.teams.Save(suite.ctx, suite.client, &service.SaveTeamRequest{Name: "Ops"})
	suite.Require().NoError(err)
	suite.NotEmpty(ops.ID)
	suite.Empty(ops.Members)
	suite.False(ops.CreatedAt.IsZero())

	launch, err := suite.projects.Save(suite.ctx, suite.client, &service.SaveProjectRequest{Name: "Launch", TeamID: ops.ID, Status: models.ProjectStatusPlanned})
	suite.Require().NoError(err)

	engine := authz.NewEngine(suite.store.ListAll(suite.ctx))
	suite.False(engine.CanCreateTask(suite.sarah, launch.ID))
	_, err = suite.tasks.Save(suite.ctx, suite.sarah, &service.SaveTaskRequest{Title: "Checklist", ProjectID: launch.ID})
	suite.True(apperrors.IsAuthorization(err))

	_, err = suite.teams.Save(suite.ctx, suite.client, &service.SaveTeamRequest{ID: ops.ID, Name: "Ops", MemberIDs: []string{suite.sarah.UserID}})
	suite.Require().NoError(err)

	engine = authz.NewEngine(suite.store.ListAll(suite.ctx))
	suite.True(engine.CanCreateTask(suite.sarah, launch.ID))

	task, err := suite.tasks.Save(suite.ctx, suite.sarah, &service.SaveTaskRequest{Title: "Checklist", ProjectID: launch.ID, AssigneeID: strPtr(suite.sarah.UserID)})
	suite.Require().NoError(err)
	suite.Equal(models.TaskPriorityMedium, task.Priority)
	suite.Equal(models.TaskStatusOpen, task.Status)

	engine = authz.NewEngine(suite.store.ListAll(suite.ctx))
	suite.True(engine.CanEditTask(suite.sarah, task))
	suite.False(engine.CanEditTask(suite.mike, task))

	_, err = suite.tasks.Save(suite.ctx, suite.mike, &service.SaveTaskRequest{ID: task.ID, Title: "Hijacked", ProjectID: launch.ID})
	suite.True(apperrors.IsAuthorization(err))

	stored, _ := suite.store.Task(task.ID)
	suite.Equal("Checklist", stored.Title)
}

// TestTeamSaveResolvesMemberNames tests the name-based member list
func (suite *ServiceTestSuite) TestTeamSaveResolvesMemberNames() {
	team, err := suite.teams.Save(suite.ctx, suite.client, &service.SaveTeamRequest{
		Name:        "QA",
		MemberIDs:   []string{"user_2"},
		MemberNames: []string{"sarah miller", "Quinn New", "", "mike chen"},
	})
	suite.Require().NoError(err)

	suite.Equal([]string{"user_2", "gen_1", "user_3"}, team.Members)
	quinn, ok := suite.store.User("gen_1")
	suite.Require().True(ok)
	suite.Equal("Quinn New", quinn.Name)
	suite.Equal(models.RoleMember, quinn.Role)

	members, err := suite.teams.Members(suite.ctx, team.ID)
	suite.NoError(err)
	suite.Len(members, 3)
}

// TestTeamSaveFailureDiscardsNewMembers tests that users created from member
// names are not kept when the team itself cannot be written
func (suite *ServiceTestSuite) TestTeamSaveFailureDiscardsNewMembers() {
	ctrl := gomock.NewController(suite.T())
	persister := mocks.NewMockPersister(ctrl)
	persister.EXPECT().Load(gomock.Any()).Return(sampleSnapshot(), nil)
	persister.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, changes ...store.Change) error {
			suite.Require().Len(changes, 2)
			suite.Equal(models.CollectionUsers, changes[0].Collection)
			suite.Equal(models.CollectionTeams, changes[1].Collection)
			return errors.New("disk full")
		})

	s, err := store.New(suite.ctx, persister)
	suite.Require().NoError(err)
	v := service.NewValidator()
	teams := service.NewTeamService(s, service.NewUserService(s, v), v)

	_, err = teams.Save(suite.ctx, suite.client, &service.SaveTeamRequest{
		ID:          "team_1",
		Name:        "Development Team",
		MemberNames: []string{"Quinn New"},
	})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "failed to save team")

	snap := s.ListAll(suite.ctx)
	suite.Len(snap.Users, 4)
	_, found := authz.NewEngine(snap).FindUserByName("Quinn New")
	suite.False(found)
	team, _ := s.Team("team_1")
	suite.Equal([]string{"user_2", "user_3"}, team.Members)
}

// TestConcurrentLoginsCreateOneUser tests that racing logins for one name,
// in any case, end up on a single user
func (suite *ServiceTestSuite) TestConcurrentLoginsCreateOneUser() {
	names := []string{"Nora New", "nora new", "NORA NEW", " Nora New "}
	ids := make([]string, 16)
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := suite.sessions.Login(suite.ctx, &service.LoginRequest{Name: names[i%len(names)], Role: models.RoleMember})
			errs[i] = err
			if err == nil {
				ids[i] = resp.User.ID
			}
		}(i)
	}
	wg.Wait()

	for i := range ids {
		suite.Require().NoError(errs[i])
		suite.Equal(ids[0], ids[i])
	}
	suite.Len(suite.store.ListAll(suite.ctx).Users, 5)
}

// TestConcurrentNameResolutionCreatesOneUser tests that team saves and direct
// resolution racing on a new name share one user
func (suite *ServiceTestSuite) TestConcurrentNameResolutionCreatesOneUser() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := suite.users.ResolveOrCreate(suite.ctx, "Quinn New")
			suite.NoError(err)
		}()
		go func(i int) {
			defer wg.Done()
			_, err := suite.teams.Save(suite.ctx, suite.client, &service.SaveTeamRequest{
				Name:        fmt.Sprintf("Squad %d", i),
				MemberNames: []string{"quinn new"},
			})
			suite.NoError(err)
		}(i)
	}
	wg.Wait()

	snap := suite.store.ListAll(suite.ctx)
	suite.Len(snap.Users, 5)
	quinn, ok := authz.NewEngine(snap).FindUserByName("Quinn New")
	suite.Require().True(ok)
	for _, team := range snap.TeamList() {
		if team.ID != "team_1" {
			suite.Equal([]string{quinn.ID}, team.Members)
		}
	}
}

// TestTeamRulesAreClientOnly tests member and guest denials
func (suite *ServiceTestSuite) TestTeamRulesAreClientOnly() {
	for _, s := range []authz.Session{suite.sarah, suite.guest} {
		_, err := suite.teams.Save(suite.ctx, s, &service.SaveTeamRequest{Name: "Rogue"})
		suite.True(apperrors.IsAuthorization(err))

		_, err = suite.teams.Save(suite.ctx, s, &service.SaveTeamRequest{ID: "team_1", Name: "Renamed"})
		suite.True(apperrors.IsAuthorization(err))

		err = suite.teams.Delete(suite.ctx, s, "team_1")
		suite.True(apperrors.IsAuthorization(err))
	}

	team, _ := suite.store.Team("team_1")
	suite.Equal("Development Team", team.Name)
	suite.Len(suite.store.ListAll(suite.ctx).Teams, 1)
}

// TestEditMissingIDs tests that edits of unknown ids report not found without writing
func (suite *ServiceTestSuite) TestEditMissingIDs() {
	_, err := suite.teams.Save(suite.ctx, suite.client, &service.SaveTeamRequest{ID: "team_404", Name: "Ghost"})
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)

	_, err = suite.projects.Save(suite.ctx, suite.client, &service.SaveProjectRequest{ID: "project_404", Name: "Ghost", TeamID: "team_1"})
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)

	_, err = suite.tasks.Save(suite.ctx, suite.client, &service.SaveTaskRequest{ID: "task_404", Title: "Ghost", ProjectID: "project_1"})
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)

	snap := suite.store.ListAll(suite.ctx)
	suite.Len(snap.Teams, 1)
	suite.Len(snap.Projects, 1)
	suite.Len(snap.Tasks, 2)
}

// TestDeleteLeavesOrphans tests that deleting a parent keeps its children
func (suite *ServiceTestSuite) TestDeleteLeavesOrphans() {
	suite.Require().NoError(suite.teams.Delete(suite.ctx, suite.client, "team_1"))
	suite.Require().NoError(suite.teams.Delete(suite.ctx, suite.client, "team_1"))

	snap := suite.store.ListAll(suite.ctx)
	suite.Empty(snap.Teams)
	suite.Contains(snap.Projects, "project_1")
	suite.Len(snap.Tasks, 2)

	suite.Require().NoError(suite.projects.Delete(suite.ctx, suite.client, "project_1"))
	suite.Len(suite.store.ListAll(suite.ctx).Tasks, 2)
}

// TestProjectSave tests project defaults and validation
func (suite *ServiceTestSuite) TestProjectSave() {
	project, err := suite.projects.Save(suite.ctx, suite.client, &service.SaveProjectRequest{Name: " Mobile App ", TeamID: "team_1"})
	suite.Require().NoError(err)
	suite.Equal("Mobile App", project.Name)
	suite.Equal(models.ProjectStatusPlanned, project.Status)

	_, err = suite.projects.Save(suite.ctx, suite.client, &service.SaveProjectRequest{Name: "Bad", TeamID: "team_1", Status: "Cancelled"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.projects.Save(suite.ctx, suite.client, &service.SaveProjectRequest{Name: "Bad", TeamID: "team_1", Deadline: "15/03/2024"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.projects.Save(suite.ctx, suite.client, &service.SaveProjectRequest{Name: "No team"})
	suite.True(apperrors.IsValidation(err))

	updated, err := suite.projects.Save(suite.ctx, suite.client, &service.SaveProjectRequest{ID: "project_1", Name: "Website Redesign", TeamID: "team_1", Status: models.ProjectStatusDone})
	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusDone, updated.Status)
	suite.Equal(time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC), updated.CreatedAt)

	tasks, err := suite.projects.Tasks(suite.ctx, "project_1")
	suite.NoError(err)
	suite.Len(tasks, 2)

	_, err = suite.projects.Tasks(suite.ctx, "project_404")
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

// TestTaskEditRules tests member edits of their own tasks
func (suite *ServiceTestSuite) TestTaskEditRules() {
	edited, err := suite.tasks.Save(suite.ctx, suite.sarah, &service.SaveTaskRequest{
		ID: "task_1", Title: "Design Homepage v2", ProjectID: "project_1",
		AssigneeID: strPtr("user_2"), Priority: models.TaskPriorityCritical, Status: models.TaskStatusDone,
	})
	suite.Require().NoError(err)
	suite.Equal("Design Homepage v2", edited.Title)
	suite.Equal(models.TaskStatusDone, edited.Status)

	_, err = suite.tasks.Save(suite.ctx, suite.sarah, &service.SaveTaskRequest{ID: "task_2", Title: "Not mine", ProjectID: "project_1"})
	suite.True(apperrors.IsAuthorization(err))

	outside, err := suite.projects.Save(suite.ctx, suite.client, &service.SaveProjectRequest{Name: "Elsewhere", TeamID: "team_other"})
	suite.Require().NoError(err)
	_, err = suite.tasks.Save(suite.ctx, suite.sarah, &service.SaveTaskRequest{ID: "task_1", Title: "Moved", ProjectID: outside.ID, AssigneeID: strPtr("user_2")})
	suite.True(apperrors.IsAuthorization(err))

	_, err = suite.tasks.Save(suite.ctx, suite.guest, &service.SaveTaskRequest{ID: "task_1", Title: "Guest edit", ProjectID: "project_1"})
	suite.True(apperrors.IsAuthorization(err))

	moved, err := suite.tasks.Save(suite.ctx, suite.client, &service.SaveTaskRequest{ID: "task_2", Title: "Setup Database", ProjectID: outside.ID, AssigneeID: strPtr("")})
	suite.Require().NoError(err)
	suite.Nil(moved.AssigneeID)
	suite.Equal(outside.ID, moved.ProjectID)
}

// TestTaskCreateByClientOnMissingProject tests that clients are not checked against parents
func (suite *ServiceTestSuite) TestTaskCreateByClientOnMissingProject() {
	task, err := suite.tasks.Save(suite.ctx, suite.client, &service.SaveTaskRequest{Title: "Floating", ProjectID: "project_404"})
	suite.Require().NoError(err)
	suite.Equal("project_404", task.ProjectID)
}

// TestTaskDeleteIsClientOnly tests task deletion
func (suite *ServiceTestSuite) TestTaskDeleteIsClientOnly() {
	err := suite.tasks.Delete(suite.ctx, suite.sarah, "task_1")
	suite.True(apperrors.IsAuthorization(err))

	suite.NoError(suite.tasks.Delete(suite.ctx, suite.client, "task_1"))
	_, ok := suite.store.Task("task_1")
	suite.False(ok)
	suite.Len(suite.tasks.List(suite.ctx), 1)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
