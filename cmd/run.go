package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Aeffchen-dev/checkin-roulette/internal/app"
	"github.com/Aeffchen-dev/checkin-roulette/internal/config"
	"github.com/Aeffchen-dev/checkin-roulette/internal/dataset"
	"github.com/Aeffchen-dev/checkin-roulette/internal/logging"
	"github.com/Aeffchen-dev/checkin-roulette/internal/nav"
	"github.com/Aeffchen-dev/checkin-roulette/internal/source"
	"github.com/Aeffchen-dev/checkin-roulette/internal/store"
)

// loadConfig merges flags over the file/env configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if u, _ := cmd.Flags().GetString("sheet-url"); u != "" {
		cfg.SheetURL = u
	}
	if p, _ := cmd.Flags().GetString("cache"); p != "" {
		cfg.CachePath = p
	}
	return cfg, nil
}

// openCache opens the SQLite cache, falling back to no cache when the
// filesystem refuses. Browsing works without it.
func openCache(cfg *config.Config, log *zap.Logger) *store.Store {
	path := cfg.CachePath
	if path == "" {
		var err error
		path, err = store.DefaultCachePath()
		if err != nil {
			log.Warn("no cache location available", zap.Error(err))
			return nil
		}
	} else if err := store.EnsureDir(path); err != nil {
		log.Warn("cache directory not writable", zap.String("path", path), zap.Error(err))
		return nil
	}

	cache, err := store.Open(path)
	if err != nil {
		log.Warn("cache unavailable", zap.String("path", path), zap.Error(err))
		return nil
	}
	return cache
}

// datasetOptions maps config onto the deck preparation pipeline.
func datasetOptions(cfg *config.Config) dataset.Options {
	opts := dataset.DefaultOptions()
	opts.IntroPolicy = dataset.PolicyFromString(cfg.IntroPolicy)
	if cfg.IntroCategory != "" {
		opts.IntroCategory = cfg.IntroCategory
	}
	return opts
}

// runApp wires the services and starts the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cache := openCache(cfg, log)
	if cache != nil {
		defer func() { _ = cache.Close() }()
	}

	loader := source.New(cfg.SheetURL, cache, log)

	return app.Run(app.Options{
		Loader:         loader,
		Controller:     nav.New(),
		DatasetOptions: datasetOptions(cfg),
		Logger:         log,
	})
}
