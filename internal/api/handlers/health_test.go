package handlers_test

import (
	"net/http"
	"testing"

	"teamtrack-backend/internal/api/handlers"
	"teamtrack-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	t.Run("in-memory store", func(t *testing.T) {
		handler := handlers.NewHealthHandler(nil, "test")
		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.GET("/health", handler.Health)
		httpSuite.Router.GET("/health/ready", handler.Ready)
		httpSuite.Router.GET("/health/live", handler.Live)

		var health handlers.HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &health)
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "test", health.Version)
		assert.Equal(t, "in-memory", health.Services["database"])

		w := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ready":true`)

		w = httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("sqlite database", func(t *testing.T) {
		base := testutils.SetupTestSuite(t)
		defer base.TeardownTestSuite()

		handler := handlers.NewHealthHandler(base.DB, "test")
		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.GET("/health", handler.Health)

		var health handlers.HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &health)
		assert.Equal(t, "healthy", health.Services["database"])
	})

	t.Run("closed database", func(t *testing.T) {
		base := testutils.SetupTestSuite(t)
		sqlDB, err := base.DB.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		handler := handlers.NewHealthHandler(base.DB, "test")
		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.GET("/health/ready", handler.Ready)

		w := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
