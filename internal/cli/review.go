package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimlens/claimlens/internal/logging"
	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/pipeline"
)

var (
	messageFile string
	outJSON     string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	insecureTLS bool
	useBrowser  bool
	controlURL  string
	noReview    bool
	llmProvider string
	llmModel    string
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review [message]",
	Short: "Review marketing copy: verify its links and check the prose",
	Long: `Review extracts every link from a marketing message, figures out what
the copy claims about each one, and checks the destination page against
that claim:
- Application links must lead to a working application or signup form
- Speaker links must lead to a profile of the named person
- Event links must show the same date and time the copy announces
- Other links must match the surrounding topic

The prose is also checked for spelling, wording, and internal
consistency (conflicting dates, impossible day/date pairs).

The message is read from the argument, from --file, or from stdin.

Example:
  claimlens review "Apply now: https://example.com/careers/apply"
  claimlens review --file announcement.txt --json report.json
  cat copy.txt | claimlens review --browser`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	// Input/output flags
	reviewCmd.Flags().StringVarP(&messageFile, "file", "f", "", "read the message from a file")
	reviewCmd.Flags().StringVar(&outJSON, "json", "", "write the full report as JSON to this path")

	// HTTP flags
	reviewCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall review timeout (increase for messages with many links)")
	reviewCmd.Flags().StringVar(&userAgent, "ua", "Claimlens/0.1 (+https://github.com/claimlens/claimlens)", "HTTP User-Agent")
	reviewCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read per page")
	reviewCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable page cache (force fresh fetches)")
	reviewCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")

	// Browser flags
	reviewCmd.Flags().BoolVar(&useBrowser, "browser", false, "render pages in a headless browser instead of plain HTTP")
	reviewCmd.Flags().StringVar(&controlURL, "browser-url", "", "attach to an existing DevTools endpoint instead of launching")

	// LLM flags
	reviewCmd.Flags().BoolVar(&noReview, "no-review", false, "skip the prose copy review")
	reviewCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	reviewCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runReview(cmd *cobra.Command, args []string) error {
	message, err := readMessage(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("empty message: pass it as an argument, via --file, or on stdin")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log := logging.New(verbose)
	defer func() { _ = log.Sync() }()

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.Browser.Enabled = useBrowser
	cfg.Browser.ControlURL = controlURL
	cfg.Review.Enabled = !noReview
	cfg.Output.Verbose = verbose
	cfg.Output.JSONPath = outJSON

	// The copy review and browser extraction both need an LLM. Direct
	// mode with --no-review runs fully offline.
	needLLM := useBrowser || !noReview
	if needLLM {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	} else {
		cfg.LLM.Provider = ""
	}

	p, err := pipeline.FromConfig(cfg, log)
	if err != nil {
		return fmt.Errorf("configure pipeline: %w", err)
	}

	report, err := p.ReviewMessage(ctx, message)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	pipeline.RenderText(os.Stdout, report)

	if outJSON != "" {
		if err := pipeline.RenderJSON(report, outJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON report: %s\n", outJSON)
		}
	}

	return nil
}

// readMessage resolves the message from the argument, --file, or stdin,
// in that order.
func readMessage(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if messageFile != "" {
		data, err := os.ReadFile(messageFile)
		if err != nil {
			return "", fmt.Errorf("read message file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
