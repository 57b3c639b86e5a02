package config

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// Config holds application configuration
type Config struct {
	WorkingDir   string
	AppDataDir   string
	DatabasePath string
	FFmpegPath   string
	Logger       *slog.Logger
}

// New creates a new configuration instance
func New() *Config {
	cfg := &Config{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	cfg.setupDirectories()
	cfg.setupFFmpegPath()

	return cfg
}

func (c *Config) setupDirectories() {
	// Working directory holds intermediate transcode output
	c.WorkingDir = filepath.Join(os.TempDir(), "kompakt")
	os.MkdirAll(c.WorkingDir, 0755)

	// App data directory holds the history database
	c.AppDataDir = getAppDataDir()
	os.MkdirAll(c.AppDataDir, 0755)

	c.DatabasePath = filepath.Join(c.AppDataDir, "history.sqlite3")
}

func (c *Config) setupFFmpegPath() {
	// ffmpeg drives the video/audio transcode sessions. Missing ffmpeg is
	// not fatal: image and PDF compression still work without it.
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		c.Logger.Warn("ffmpeg not found on PATH, video and audio compression disabled")
		return
	}
	c.FFmpegPath = path
}

func getAppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "kompakt-data")
	}
	return filepath.Join(dir, "Kompakt")
}
