// internal/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"record-notes/internal/config"
	"record-notes/internal/service"
	"record-notes/internal/util"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger

	// Services
	NotesService service.NotesService
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.Level())
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.", "log_level", cfg.LogLevel, "pretty", cfg.Pretty)

	// 3. Initialize Services
	app.NotesService = service.NewNotesService(app.Logger, app.Config.Pretty)
	app.Logger.Info("Services initialized.")

	return nil
}

// Run executes the walkthrough, writing results to out and inspections to diag.
func (app *Application) Run(ctx context.Context, out, diag io.Writer) error {
	report, err := app.NotesService.Walkthrough(ctx, out, diag)
	if err != nil {
		return fmt.Errorf("walkthrough failed: %w", err)
	}
	app.Logger.Info("Walkthrough completed.", "area", report.Area)
	return nil
}
