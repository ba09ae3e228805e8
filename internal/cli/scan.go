package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/trustlens/internal/model"
	"github.com/ppiankov/trustlens/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	outHTML     string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	noRobots    bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string

	noFacts    bool
	noBias     bool
	noEmotion  bool
	noPatterns bool

	factCheckKey string

	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a URL and score its article text",
	Long: `Scan fetches a web page, extracts the article text, and runs the
full credibility analysis over it.

Example:
  trustlens scan https://example.com/article
  trustlens scan https://example.com/article --json report.json --md report.md
  trustlens scan https://example.com/article --html highlighted.html
  trustlens scan https://example.com/article --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	addOutputFlags(scanCmd)
	addHTTPFlags(scanCmd)
	addDetectorFlags(scanCmd)
	addLLMFlags(scanCmd)

	scanCmd.Flags().StringVar(&outHTML, "html", "", "output highlighted HTML path (optional)")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	cmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	cmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func addHTTPFlags(cmd *cobra.Command) {
	defaults := model.DefaultConfig()
	cmd.Flags().DurationVar(&timeout, "timeout", defaults.HTTP.Timeout, "overall analysis timeout")
	cmd.Flags().StringVar(&userAgent, "ua", defaults.HTTP.UserAgent, "HTTP User-Agent")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", defaults.HTTP.MaxBodyBytes, "max response bytes to read")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	cmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	cmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	cmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	cmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func addDetectorFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&noFacts, "no-facts", false, "skip fact checking")
	cmd.Flags().BoolVar(&noBias, "no-bias", false, "skip bias detection")
	cmd.Flags().BoolVar(&noEmotion, "no-emotion", false, "skip emotional manipulation detection")
	cmd.Flags().BoolVar(&noPatterns, "no-patterns", false, "skip linguistic pattern analysis")
	cmd.Flags().StringVar(&factCheckKey, "fact-check-key", "", "Google Fact Check Tools API key (or GOOGLE_FACTCHECK_API_KEY)")
}

func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative generation")
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	cmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// resolveConfig layers the viper-resolved settings (config file and
// bound environment values) over the built-in defaults.
func resolveConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	err := viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// buildConfig assembles the effective config: defaults, then the config
// file and environment via viper, then any flags the user actually set.
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	// Batch registers the per-fetch timeout as --scan-timeout because
	// its --timeout is the total budget
	if f := flags.Lookup("scan-timeout"); f != nil {
		if f.Changed {
			cfg.HTTP.Timeout = timeout
		}
	} else if flags.Changed("timeout") {
		cfg.HTTP.Timeout = timeout
	}
	if flags.Changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if flags.Changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if flags.Changed("insecure") {
		cfg.HTTP.InsecureTLS = insecureTLS
	}
	if flags.Changed("http-proxy") {
		cfg.HTTP.HTTPProxy = httpProxy
	}
	if flags.Changed("https-proxy") {
		cfg.HTTP.HTTPSProxy = httpsProxy
	}
	if flags.Changed("no-robots") {
		cfg.HTTP.RespectRobots = !noRobots
	}
	if flags.Changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if flags.Changed("no-footer") {
		cfg.Output.IncludeFooter = !noFooter
	}
	if verbose {
		cfg.Output.Verbose = true
	}

	if factCheckKey != "" {
		cfg.FactCheck.APIKey = factCheckKey
	} else if key := os.Getenv("GOOGLE_FACTCHECK_API_KEY"); key != "" {
		cfg.FactCheck.APIKey = key
	}

	if llmEnabled {
		if cfg.LLM.Provider == "" || flags.Changed("llm-provider") {
			cfg.LLM.Provider = llmProvider
		}
		if cfg.LLM.Model == "" || flags.Changed("llm-model") {
			cfg.LLM.Model = llmModel
		}
	}
	if cfg.LLM.Provider != "" {
		switch cfg.LLM.Provider {
		case "openai":
			if cfg.LLM.APIKey == "" {
				cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			}
			if cfg.LLM.BaseURL == "" {
				cfg.LLM.BaseURL = os.Getenv("OPENAI_BASE_URL")
			}
			if cfg.LLM.APIKey == "" && cfg.LLM.BaseURL == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		default:
			return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLM.Provider)
		}
	}

	return cfg, nil
}

// buildOptions assembles detector options from flags
func buildOptions() model.Options {
	opts := model.DefaultOptions()
	opts.CheckFacts = !noFacts
	opts.AnalyzeBias = !noBias
	opts.DetectEmotionalManipulation = !noEmotion
	opts.AnalyzeLinguisticPatterns = !noPatterns
	return opts
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", cfg.HTTP.Timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Fetching article...\n")
	}

	result := p.AnalyzeURL(ctx, url, buildOptions())

	if verbose && result.Error == "" {
		fmt.Fprintf(os.Stderr, "✓ Analyzed %d bytes of text\n", result.TextLength)
		fmt.Fprintf(os.Stderr, "✓ Found %d issues\n", len(result.Issues))
		fmt.Fprintf(os.Stderr, "✓ Credibility score: %d/100\n", result.CredibilityScore)
		if result.LLM != nil {
			fmt.Fprintf(os.Stderr, "✓ Generated narrative using %s/%s\n", result.LLM.Provider, result.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if outHTML != "" && result.Error == "" {
		text, err := p.Text(ctx, url)
		if err == nil {
			if err := p.RenderHighlight(text, result, outHTML, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
	}

	if err := p.RenderReport(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if result.Error != "" {
		return fmt.Errorf("%s", result.Error)
	}
	return nil
}
