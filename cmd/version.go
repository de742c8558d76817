package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kraev/ai-review/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ai-review v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
