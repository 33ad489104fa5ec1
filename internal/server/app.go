package server

import (
	"context"
	"errors"
	"fmt"

	"chalee-api/internal/application/service"
	"chalee-api/internal/config"
	"chalee-api/internal/database"
	"chalee-api/internal/domain/events"
	"chalee-api/internal/domain/post"
	"chalee-api/internal/github"
	infraGitHub "chalee-api/internal/infrastructure/github"
	"chalee-api/internal/infrastructure/memory"
	"chalee-api/internal/infrastructure/persistence"
	"chalee-api/internal/presentation/handlers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App is the wired application: storage, upstream clients, services and router
type App struct {
	Router  *gin.Engine
	db      *database.DB
	closers []func() error
}

// New wires every layer from cfg
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	app := &App{}

	// Storage
	postRepository, err := app.newPostRepository(ctx, cfg, logger)
	if err != nil {
		app.Close()
		return nil, err
	}

	// External service clients
	githubClient, err := github.NewClient(github.Options{
		Token:   cfg.GitHub.Token,
		BaseURL: cfg.GitHub.BaseURL,
		Timeout: cfg.GitHub.Timeout,
	}, logger)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	githubService := infraGitHub.NewGitHubService(githubClient, logger)

	// Domain events
	dispatcher := events.NewDispatcher(logger)
	for _, eventType := range post.EventTypes {
		dispatcher.Register(eventType, events.LogHandler(logger))
	}

	// Application services (use cases)
	postService := service.NewPostService(postRepository, dispatcher, logger)
	repositoryService := service.NewRepositoryService(githubService)

	// HTTP handlers
	errorWriter := handlers.NewErrorWriter(cfg.IsProduction(), logger)
	var pinger handlers.Pinger
	if app.db != nil {
		pinger = app.db
	}
	app.Router = NewRouter(cfg, Handlers{
		Health:       handlers.NewHealthHandler(cfg.Environment, pinger),
		Posts:        handlers.NewPostHandler(postService, errorWriter),
		Repositories: handlers.NewRepositoryHandler(repositoryService, errorWriter),
	}, logger)

	return app, nil
}

func (a *App) newPostRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (post.Repository, error) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("using in-memory post storage; data is lost on restart")
		return memory.NewPostRepository(), nil
	}

	db, err := database.NewConnection(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db
	a.closers = append(a.closers, db.Close)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(cfg.Database.DSN); err != nil {
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	return persistence.NewPostRepository(db), nil
}

// Close releases the database pool
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	a.closers = nil
	return errors.Join(errs...)
}
