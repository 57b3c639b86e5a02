package application

import (
	"context"

	"kompakt/internal/config"
	"kompakt/internal/container"
	"kompakt/internal/database"
	"kompakt/internal/transport"
	"kompakt/internal/workflow"
)

// App is the facade bound to the Wails frontend.
type App struct {
	ctx       context.Context
	config    *config.Config
	container *container.Container
	wailsApp  *transport.WailsApp
}

// NewApp creates a new application instance
func NewApp() *App {
	return &App{}
}

// OnStartup is called when the app context is ready
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	// Initialize configuration
	cfg := config.New()
	a.config = cfg

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		cfg.Logger.Error("Failed to initialize database", "error", err)
		return
	}

	// Initialize dependency container
	a.container, err = container.New(ctx, cfg, db)
	if err != nil {
		cfg.Logger.Error("Failed to initialize services", "error", err)
		return
	}

	status := map[string]interface{}{
		"status":           "running",
		"app_name":         "Kompakt",
		"ffmpeg_path":      a.container.GetTranscoder().FFmpegPath(),
		"ffmpeg_available": a.container.GetTranscoder().IsAvailable(),
		"working_dir":      cfg.WorkingDir,
	}
	a.wailsApp = transport.NewWailsApp(ctx, a.container.GetController(), db, a.container.GetStats(), status)

	cfg.Logger.Info("Wails app initialized successfully")
	cfg.Logger.Info("Application configuration",
		"working_directory", cfg.WorkingDir,
		"database_path", cfg.DatabasePath,
		"ffmpeg_available", a.container.GetTranscoder().IsAvailable())
}

// OnShutdown releases background workers.
func (a *App) OnShutdown(ctx context.Context) {
	if a.container != nil {
		a.container.Release()
	}
}

// SelectFile opens the file picker and returns the resulting state.
func (a *App) SelectFile() (workflow.UiState, error) {
	if a.wailsApp == nil {
		return workflow.UiState{}, nil
	}
	return a.wailsApp.SelectFile()
}

// RemoveFile clears the current selection.
func (a *App) RemoveFile() workflow.UiState {
	if a.wailsApp == nil {
		return workflow.UiState{}
	}
	return a.wailsApp.RemoveFile()
}

// Compress starts a compression attempt for the current selection.
func (a *App) Compress() workflow.UiState {
	if a.wailsApp == nil {
		return workflow.UiState{}
	}
	return a.wailsApp.Compress()
}

// GetState returns the current UI state.
func (a *App) GetState() workflow.UiState {
	if a.wailsApp == nil {
		return workflow.UiState{}
	}
	return a.wailsApp.GetState()
}

// GetHistory returns recent compression attempts.
func (a *App) GetHistory() ([]transport.HistoryEntry, error) {
	if a.wailsApp == nil {
		return nil, nil
	}
	return a.wailsApp.GetHistory()
}

// GetStats returns application statistics.
func (a *App) GetStats() transport.AppStats {
	if a.wailsApp == nil {
		return transport.AppStats{}
	}
	return a.wailsApp.GetStats()
}

// GetAppStatus returns application status information.
func (a *App) GetAppStatus() map[string]interface{} {
	if a.wailsApp == nil {
		return map[string]interface{}{"status": "starting"}
	}
	return a.wailsApp.GetAppStatus()
}
