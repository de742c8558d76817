package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kraev/ai-review/git"
	"github.com/kraev/ai-review/llm"
	"github.com/kraev/ai-review/logger"
	"github.com/kraev/ai-review/prompt"
	"github.com/kraev/ai-review/render"
	"github.com/kraev/ai-review/review"
)

const defaultModel = "gpt-4.1"

// changesNotice is the progress message for the diff-collection step. No
// default-branch resolution happens when a revision is given explicitly,
// so the notice names it instead.
func changesNotice(against string) string {
	if against != "" {
		return "Fetching changes against " + against + "..."
	}
	return "Fetching changes against default branch..."
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review code changes using AI",
	Long:  `Collect the diff against the comparison base and have the AI reviewer comment on it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		customPrompt, _ := cmd.Flags().GetString("prompt")
		against, _ := cmd.Flags().GetString("against")
		model, _ := cmd.Flags().GetString("model")
		return runReview(customPrompt, against, model)
	},
}

func runReview(customPrompt, against, model string) error {
	instructions := prompt.GetSystemPrompt()
	if customPrompt != "" {
		instructions = customPrompt
	}

	llmClient, err := llm.NewLLM(llm.ProviderOpenAI, model)
	if err != nil {
		return err
	}

	gitClient := git.NewClient(git.NewDefaultRunner(""))

	logger.Info(changesNotice(against))
	changes, err := gitClient.Changes(against)
	if err != nil {
		return err
	}

	logger.Info("Sending changes to AI for review...")
	requester := review.NewRequester(llmClient)
	rev, err := requester.Request(changes, instructions)
	if err != nil {
		return err
	}

	cost, _ := requester.Cost()
	render.New(os.Stdout).Render(rev, cost)
	return nil
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringP("prompt", "p", "",
		"Custom system prompt for the AI (replaces the default reviewer prompt)")
	reviewCmd.Flags().String("against", "",
		"Git revision to diff against (instead of using the merge-base)")
	reviewCmd.Flags().StringP("model", "m", defaultModel,
		"OpenAI model to use for the review")
}
