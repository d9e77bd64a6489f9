// Package logging builds the application logger. While the TUI is running
// it owns the terminal, so logs go to a file (or nowhere) instead of stdout.
package logging

import (
	"go.uber.org/zap"

	"github.com/Aeffchen-dev/checkin-roulette/internal/config"
	"github.com/Aeffchen-dev/checkin-roulette/internal/store"
)

// New returns a logger writing to the configured log file. With no log path
// configured, logging is a no-op.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogPath == "" {
		return zap.NewNop(), nil
	}

	if err := store.EnsureDir(cfg.LogPath); err != nil {
		return nil, err
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{cfg.LogPath}
	zc.ErrorOutputPaths = []string{cfg.LogPath}

	return zc.Build()
}
