package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"teamtrack-backend/internal/api/handlers"
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"
	"teamtrack-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	handler := handlers.NewProjectHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest().AsUser("user_1", models.RoleClient)
	projects := suite.httpSuite.Router.Group("/api/v1/projects")
	projects.GET("", handler.ListProjects)
	projects.POST("", handler.CreateProject)
	projects.PUT("/:id", handler.UpdateProject)
	projects.DELETE("/:id", handler.DeleteProject)
	projects.GET("/:id/tasks", handler.GetProjectTasks)
}

func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) TestListProjects() {
	suite.mockService.EXPECT().List(gomock.Any()).Return([]models.Project{})

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	suite.mockService.EXPECT().
		Save(gomock.Any(), suite.httpSuite.Session(), &service.SaveProjectRequest{
			Name: "Website Redesign", TeamID: "team_1", Status: models.ProjectStatusInProgress, Deadline: "2024-03-15",
		}).
		Return(&models.Project{BaseModel: models.BaseModel{ID: "project_1"}, Name: "Website Redesign", TeamID: "team_1", Status: models.ProjectStatusInProgress}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/projects", map[string]interface{}{
		"name":     "Website Redesign",
		"team_id":  "team_1",
		"status":   "In Progress",
		"deadline": "2024-03-15",
	})

	var project models.Project
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &project)
	suite.Equal("project_1", project.ID)
	suite.Equal(models.ProjectStatusInProgress, project.Status)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject() {
	suite.mockService.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Cond(func(x any) bool {
			req, ok := x.(*service.SaveProjectRequest)
			return ok && req.ID == "project_1"
		})).
		Return(&models.Project{BaseModel: models.BaseModel{ID: "project_1"}, Name: "Renamed"}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/projects/project_1", map[string]interface{}{"name": "Renamed", "team_id": "team_1"})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestStoreFailure() {
	suite.mockService.EXPECT().Delete(gomock.Any(), gomock.Any(), "project_1").Return(errors.New("failed to delete project: disk full"))

	w := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/projects/project_1", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "disk full")
}

func (suite *ProjectHandlerTestSuite) TestMemberIsForbidden() {
	suite.httpSuite.AsUser("user_2", models.RoleMember)
	suite.mockService.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewPermissionDenied("member", "create", "project"))
	suite.mockService.EXPECT().Delete(gomock.Any(), gomock.Any(), "project_1").
		Return(apperrors.NewPermissionDenied("member", "delete", "project"))

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/projects", map[string]interface{}{"name": "X", "team_id": "team_1"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "member cannot create project")

	w = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/projects/project_1", nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestGetProjectTasks() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Tasks(gomock.Any(), "project_1").Return([]models.Task{
			{BaseModel: models.BaseModel{ID: "task_1"}, Title: "Design Homepage", ProjectID: "project_1"},
		}, nil)

		w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/project_1/tasks", nil)

		var tasks []models.Task
		testutils.AssertJSONResponse(t, w, http.StatusOK, &tasks)
		suite.Len(tasks, 1)
	})

	suite.T().Run("Project not found", func(t *testing.T) {
		suite.mockService.EXPECT().Tasks(gomock.Any(), "project_404").Return(nil, apperrors.ErrProjectNotFound)

		w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/project_404/tasks", nil)
		testutils.AssertErrorResponse(t, w, http.StatusNotFound, "project not found")
	})
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
