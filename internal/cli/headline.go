package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/trustlens/internal/analyzer"
	"github.com/ppiankov/trustlens/internal/model"
	"github.com/ppiankov/trustlens/internal/score"
)

// headlineCmd represents the headline command
var headlineCmd = &cobra.Command{
	Use:   "headline <text>",
	Short: "Score a single headline for clickbait signals",
	Long: `Headline scores a title in isolation: clickbait phrasing, question
or ellipsis hooks, and shouting caps. Output is a 0-1 clickbait score.

Example:
  trustlens headline "You Won't Believe What Happened Next..."`,
	Args: cobra.ExactArgs(1),
	RunE: runHeadline,
}

func init() {
	rootCmd.AddCommand(headlineCmd)
}

func runHeadline(cmd *cobra.Command, args []string) error {
	title := args[0]

	a := analyzer.New(model.DefaultConfig(), nil)
	clickbait := a.Patterns().HeadlineScore(title)

	// Map the clickbait score onto the credibility scale for the badge
	credibility := int(100 - clickbait*100)

	fmt.Printf("Headline:  %s\n", title)
	fmt.Printf("Clickbait: %.2f\n", clickbait)
	fmt.Printf("Badge:     %s\n", score.Badge(credibility))

	return nil
}
