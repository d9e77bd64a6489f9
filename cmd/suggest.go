package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aeffchen-dev/checkin-roulette/internal/dataset"
	"github.com/Aeffchen-dev/checkin-roulette/internal/deck"
	"github.com/Aeffchen-dev/checkin-roulette/internal/logging"
	"github.com/Aeffchen-dev/checkin-roulette/internal/source"
	"github.com/Aeffchen-dev/checkin-roulette/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <category>",
	Short: "Generate new question drafts for a category",
	Long:  "Generates question drafts with an LLM and prints them as sheet rows, ready to paste into the source sheet. Requires CHECKIN_OPENAI_API_KEY.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		gen, err := suggest.New(cfg.Suggest)
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

		// Current questions feed the prompt so drafts don't repeat the deck.
		loader := source.New(cfg.SheetURL, cache, log)
		ds := dataset.Load(cmd.Context(), loader, datasetOptions(cfg))

		category := args[0]
		var existing []string
		for _, r := range ds.Records {
			if r.Category == category {
				existing = append(existing, r.Text)
			}
		}

		depth := deck.DepthLight
		if d, _ := cmd.Flags().GetString("depth"); d != "" {
			depth = deck.ParseDepth(d)
		}
		count, _ := cmd.Flags().GetInt("count")

		drafts, err := gen.Suggest(cmd.Context(), category, depth, count, existing)
		if err != nil {
			return err
		}

		for _, r := range drafts {
			fmt.Println(deck.FormatRow(r))
		}
		return nil
	},
}

func init() {
	suggestCmd.Flags().Int("count", 5, "Number of drafts to generate")
	suggestCmd.Flags().String("depth", "light", "Question depth (light or deep)")
}
