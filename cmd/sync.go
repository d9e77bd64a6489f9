package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aeffchen-dev/checkin-roulette/internal/deck"
	"github.com/Aeffchen-dev/checkin-roulette/internal/logging"
	"github.com/Aeffchen-dev/checkin-roulette/internal/source"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the question sheet and refresh the offline cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.SheetURL == "" {
			return errors.New("no sheet URL configured; set CHECKIN_SHEET_URL or --sheet-url")
		}

		log, err := logging.New(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		cache := openCache(cfg, log)
		if cache == nil {
			return errors.New("cache unavailable; nothing to refresh")
		}
		defer func() { _ = cache.Close() }()

		loader := source.New(cfg.SheetURL, cache, log)
		res := loader.Load(cmd.Context())
		if res.Origin != source.OriginRemote {
			return fmt.Errorf("remote fetch failed, still serving from %s", res.Origin)
		}

		records := deck.Parse(res.Raw)
		fmt.Printf("synced %d rows (%d categories)\n", len(records), len(deck.Categories(records)))
		return nil
	},
}
