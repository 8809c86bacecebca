package app

import (
	"context"

	"leasehold/config"
	"leasehold/internal/controllers"
	"leasehold/internal/database"
	"leasehold/internal/handlers/middleware"
	"leasehold/internal/repositories"
	"leasehold/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// Pinger reports whether the backing stores are reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	Database    database.DB
	Config      config.Config
	Middleware  middleware.Middleware
	Repos       repositories.Repository
	Services    services.Service
	Controllers controllers.Controllers
	Pinger      Pinger
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)

	services, err := services.New(context.Background(), db, repos, config)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	controllers := controllers.New(services, repos, db)
	middleware := middleware.New(config, services.Session)

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
	app.Pinger = &app.Database

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Session,
		a.Services.PhotoStorage,
		a.Services.Transaction,
		a.Controllers.Listing,
		a.Controllers.Application,
		a.Controllers.Draft,
		a.Controllers.Admin,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
