package container

import (
	"context"
	"log/slog"

	"kompakt/internal/compression"
	"kompakt/internal/config"
	"kompakt/internal/database"
	"kompakt/internal/transport"
	"kompakt/internal/workflow"
)

// Container holds all dependencies for the application
type Container struct {
	config *config.Config
	db     *database.Database
	logger *slog.Logger

	transcoder *compression.Transcoder
	dispatcher *compression.Dispatcher
	stats      *transport.StatsManager
	controller *workflow.Controller
}

// New creates a new dependency injection container
func New(ctx context.Context, cfg *config.Config, db *database.Database) (*Container, error) {
	c := &Container{
		config: cfg,
		db:     db,
		logger: cfg.Logger,
	}

	if err := c.initServices(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// initServices initializes all services with their dependencies
func (c *Container) initServices(ctx context.Context) error {
	transcoder, err := compression.NewTranscoder(c.config.FFmpegPath, c.config.WorkingDir, c.logger)
	if err != nil {
		return err
	}
	c.transcoder = transcoder
	c.dispatcher = compression.NewDispatcher(transcoder, c.logger)

	emitter := transport.NewEmitter(ctx)

	totalFiles, totalSaved, err := c.db.TotalsSaved()
	if err != nil {
		c.logger.Warn("Failed to load lifetime statistics", "error", err)
	}
	c.stats = transport.NewStatsManager(ctx, emitter, totalFiles, totalSaved)

	recorder := &historyRecorder{
		db:     c.db,
		stats:  c.stats,
		logger: c.logger,
	}

	c.controller = workflow.NewController(
		ctx,
		transport.NewDialogsHandler(ctx),
		c.dispatcher,
		recorder,
		emitter,
		c.logger,
	)
	return nil
}

// GetController returns the workflow controller
func (c *Container) GetController() *workflow.Controller {
	return c.controller
}

// GetStats returns the statistics manager
func (c *Container) GetStats() *transport.StatsManager {
	return c.stats
}

// GetTranscoder returns the media transcoder
func (c *Container) GetTranscoder() *compression.Transcoder {
	return c.transcoder
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Release shuts down background workers.
func (c *Container) Release() {
	if c.transcoder != nil {
		c.transcoder.Release()
	}
}
