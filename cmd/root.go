package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kraev/ai-review/logger"
)

var (
	// Command line flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ai-review",
	Short: "AI-powered review of your local code changes",
	Long: `ai-review collects the diff between your branch and the remote default
branch (or an explicit revision), sends it to an AI reviewer and prints
the categorized findings with a cost estimate.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Progress notices are info level; they only show up with --verbose.
		level := "warn"
		if verbose {
			level = "info"
		}
		logger.Init(level)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand defaults to a review with no overrides.
		return runReview("", "", defaultModel)
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Show progress output on stderr")
}
