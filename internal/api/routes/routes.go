package routes

import (
	"fmt"

	"teamtrack-backend/internal/api/handlers"
	"teamtrack-backend/internal/api/middleware"
	"teamtrack-backend/internal/auth"
	"teamtrack-backend/internal/config"
	"teamtrack-backend/internal/service"
	"teamtrack-backend/internal/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application. db may be nil
// when the store is not database-backed.
func SetupRoutes(st *store.Store, db *gorm.DB, authConfig *auth.AuthConfig, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize auth
	authService, err := auth.NewAuthService(authConfig, st)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	userService := service.NewUserService(st, validator)
	sessionService := service.NewSessionService(st, authService, validator)
	teamService := service.NewTeamService(st, userService, validator)
	projectService := service.NewProjectService(st, validator)
	taskService := service.NewTaskService(st, validator)
	workspaceService := service.NewWorkspaceService(st, teamService, projectService, taskService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	authHandler := auth.NewAuthHandler(sessionService, userService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)

	// Health check routes
	registerHealthRoutes(router, healthHandler)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Login is the only unauthenticated API route
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		authGroup := protected.Group("/auth")
		{
			authGroup.GET("/me", authHandler.Me)
			authGroup.PUT("/profile", authHandler.UpdateProfile)
		}

		protected.GET("/data", workspaceHandler.GetData)
		protected.POST("/data/import", workspaceHandler.ImportData)
		protected.GET("/stats", workspaceHandler.GetStats)
		protected.GET("/capabilities", workspaceHandler.GetCapabilities)
		protected.DELETE("/delete/:collection/:id", workspaceHandler.DeleteEntity)

		me := protected.Group("/me")
		{
			me.GET("/teams", workspaceHandler.GetMyTeams)
			me.GET("/projects", workspaceHandler.GetMyProjects)
			me.GET("/tasks", workspaceHandler.GetMyTasks)
		}

		users := protected.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/assignable", userHandler.ListAssignableUsers)
		}

		teams := protected.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/members", teamHandler.GetTeamMembers)
		}

		projects := protected.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/tasks", projectHandler.GetProjectTasks)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	registerHealthRoutes(router, handlers.NewHealthHandler(db, Version))
	return router
}

func registerHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
}
