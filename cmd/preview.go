package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aeffchen-dev/checkin-roulette/internal/dataset"
	"github.com/Aeffchen-dev/checkin-roulette/internal/deck"
	"github.com/Aeffchen-dev/checkin-roulette/internal/logging"
	"github.com/Aeffchen-dev/checkin-roulette/internal/source"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the prepared deck without starting the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log, err := logging.New(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		cache := openCache(cfg, log)
		if cache != nil {
			defer func() { _ = cache.Close() }()
		}

		loader := source.New(cfg.SheetURL, cache, log)

		opts := datasetOptions(cfg)
		if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
			opts.Rand = rand.New(rand.NewSource(seed))
		}

		ds := dataset.Load(cmd.Context(), loader, opts)

		fmt.Fprintf(os.Stderr, "source: %s, %d questions\n", ds.Origin, len(ds.Records))

		if ds.Intro != nil {
			fmt.Println(deck.FormatRow(*ds.Intro))
		}
		for _, r := range ds.Records {
			fmt.Println(deck.FormatRow(r))
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().Int64("seed", 0, "Shuffle seed for a reproducible order (0 = random)")
}
