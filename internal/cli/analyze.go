package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/trustlens/internal/pipeline"
)

var (
	analyzeFile string
	analyzeHTML string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze plain text for credibility signals",
	Long: `Analyze runs the credibility detectors over plain text given as an
argument, a file, or stdin.

Example:
  trustlens analyze "SHOCKING: Scientists say 87% of studies are wrong!"
  trustlens analyze --file article.txt --json report.json
  cat article.txt | trustlens analyze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	addOutputFlags(analyzeCmd)
	addDetectorFlags(analyzeCmd)
	addLLMFlags(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "read text from file instead of the argument")
	analyzeCmd.Flags().StringVar(&analyzeHTML, "html", "", "output highlighted HTML path (optional)")
}

// readAnalyzeInput resolves the text source: argument, file, or stdin
func readAnalyzeInput(args []string) (string, error) {
	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	}

	if len(args) == 1 {
		return args[0], nil
	}

	info, err := os.Stdin.Stat()
	if err == nil && (info.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("no input: pass text as an argument, use --file, or pipe to stdin")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readAnalyzeInput(args)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	p := pipeline.NewPipeline(cfg)
	result := p.AnalyzeText(ctx, text, buildOptions())

	if verbose {
		if flagged := p.Analyzer().Emotion().ExcessiveSentences(text); len(flagged) > 0 {
			fmt.Fprintf(os.Stderr, "Highly emotional sentences (%d):\n", len(flagged))
			for _, sentence := range flagged {
				fmt.Fprintf(os.Stderr, "  - %s\n", sentence)
			}
			fmt.Fprintln(os.Stderr)
		}
	}

	if analyzeHTML != "" {
		if err := p.RenderHighlight(text, result, analyzeHTML, verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if err := p.RenderReport(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
