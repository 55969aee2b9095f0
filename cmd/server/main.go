//go:generate swag init -d ../.. -g cmd/server/main.go -o ../../docs

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamtrack-backend/internal/api/routes"
	"teamtrack-backend/internal/auth"
	"teamtrack-backend/internal/config"
	"teamtrack-backend/internal/database"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/repository"
	"teamtrack-backend/internal/seed"
	"teamtrack-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "teamtrack-backend/docs" // This is needed for swag
)

//	@title			TeamTrack Backend API
//	@version		1.0
//	@description	Backend API for TeamTrack: users, teams, projects and tasks with role-based permissions.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the token returned by /auth/login.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize persistence
	persister, db, err := openPersister(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize persistence: ", err)
	}
	st, err := store.New(ctx, persister)
	if err != nil {
		logrus.Fatal("Failed to load entities: ", err)
	}

	if cfg.SeedSampleData {
		if _, err := seed.LoadIfEmpty(ctx, st); err != nil {
			logrus.Warn("Failed to load sample data: ", err)
		}
	}

	authConfig, err := auth.LoadAuthConfig("")
	if err != nil {
		logrus.Fatal("Failed to load auth config: ", err)
	}
	authConfig.JWTSecret = cfg.JWTSecret
	authConfig.TokenTTLMinutes = cfg.TokenTTLMinutes

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(st, db, authConfig, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":   port,
			"driver": cfg.StoreDriver,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server shutdown failed: ", err)
	}
	closeDatabase(db)
}

// openPersister returns the store backing selected by cfg.StoreDriver. The
// database handle is nil for the memory driver.
func openPersister(cfg *config.Config) (store.Persister, *gorm.DB, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return store.NewMemoryPersister(nil), nil, nil
	case config.DriverPostgres:
		db, err := database.Initialize(database.DriverPostgres, cfg.DatabaseURL, nil)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSnapshotRepository(db), db, nil
	case config.DriverSQLite:
		db, err := database.Initialize(database.DriverSQLite, cfg.SQLitePath, nil)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSnapshotRepository(db), db, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func closeDatabase(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
