package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kraev/ai-review/git"
	"github.com/kraev/ai-review/logger"
)

var showDiffCmd = &cobra.Command{
	Use:   "show-diff",
	Short: "Show the diff that would be reviewed",
	Long:  `Resolve the comparison base and print the raw diff without sending anything for review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		against, _ := cmd.Flags().GetString("against")

		gitClient := git.NewClient(git.NewDefaultRunner(""))

		logger.Info(changesNotice(against))
		changes, err := gitClient.Changes(against)
		if err != nil {
			return err
		}

		fmt.Fprint(os.Stdout, changes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showDiffCmd)

	showDiffCmd.Flags().String("against", "",
		"Git revision to diff against (instead of using the merge-base)")
}
