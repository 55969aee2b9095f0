package repository

import (
	"testing"
	"time"

	"teamtrack-backend/internal/database/models"
	"teamtrack-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestSaveStoresEveryField tests that every project field is stored
func (suite *ProjectRepositoryTestSuite) TestSaveStoresEveryField() {
	project := suite.factories.Project.WithTeam("team_1")
	project.Name = "Website Redesign"
	project.Status = models.ProjectStatusInProgress
	project.Deadline = "2024-03-15"

	suite.Require().NoError(suite.repo.Save(project))

	found, err := findByID[models.Project](suite.baseTestSuite.DB, project.ID)
	suite.NoError(err)
	suite.Equal("Website Redesign", found.Name)
	suite.Equal("team_1", found.TeamID)
	suite.Equal(models.ProjectStatusInProgress, found.Status)
	suite.Equal("2024-03-15", found.Deadline)
	suite.Equal(project.Description, found.Description)
}

// TestGetAllOrdersByCreation tests read ordering
func (suite *ProjectRepositoryTestSuite) TestGetAllOrdersByCreation() {
	first := suite.factories.Project.WithTeam("team_1")
	second := suite.factories.Project.WithTeam("team_2")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	suite.Require().NoError(suite.repo.Save(second))
	suite.Require().NoError(suite.repo.Save(first))

	projects, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Require().Len(projects, 2)
	suite.Equal(first.ID, projects[0].ID)
	suite.Equal(second.ID, projects[1].ID)
}

// TestDelete tests deleting a project
func (suite *ProjectRepositoryTestSuite) TestDelete() {
	project := suite.factories.Project.WithTeam("team_1")
	suite.Require().NoError(suite.repo.Save(project))

	suite.NoError(suite.repo.Delete(project.ID))

	projects, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Empty(projects)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
