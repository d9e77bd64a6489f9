package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "checkin-roulette",
	Short: "Card deck of check-in questions for team meetings",
	Long:  "Check-in Roulette is a terminal card deck of conversation starters, shuffled fairly across categories.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("sheet-url", "", "Question sheet URL (overrides CHECKIN_SHEET_URL)")
	rootCmd.PersistentFlags().String("cache", "", "Path to SQLite cache file (overrides config)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
