package testutils

import (
	"fmt"
	"testing"

	"teamtrack-backend/internal/config"
	"teamtrack-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ------------------------------
// Base suite types
// ------------------------------
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// tables lists the entity tables in the order they are cleaned.
var tables = []string{"tasks", "projects", "teams", "users"}

// ------------------------------
// Public helpers
// ------------------------------

// SetupTestSuite opens a private in-memory SQLite database with the schema
// migrated. Each call returns an isolated database.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(database.DriverSQLite, dsn, nil)
	if err != nil {
		t.Fatalf("failed to initialize sqlite test database: %v", err)
	}
	return &BaseTestSuite{
		DB: db,
		Config: &config.Config{
			Environment:     "test",
			Port:            "8080",
			LogLevel:        "debug",
			StoreDriver:     config.DriverSQLite,
			SQLitePath:      dsn,
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 60,
		},
	}
}

// RunWithTestSuite is a convenience wrapper to run a function with a ready suite.
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite closes SQLite databases. The shared Postgres container is
// only cleaned; CleanupSharedContainer removes it at the end of the run.
func (s *BaseTestSuite) TeardownTestSuite() {
	s.CleanTestDB()
	if s.DB == nil || s.DB == sharedDB {
		return
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// CleanTestDB empties the entity tables if they exist.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`DELETE FROM "` + t + `"`)
		}
	}
}
