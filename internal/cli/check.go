package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/news"
	"github.com/claimlens/claimlens/internal/pipeline"
)

var (
	outJSON     string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	enrich      bool
	insecureTLS bool
	pretty      bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <claim>",
	Short: "Fact-check a single claim against news coverage",
	Long: `Check retrieves news articles relevant to the claim, analyzes how
the coverage leans, weights sources by credibility, and prints the
resulting verdict as JSON.

Requires a NewsAPI key in the NEWS_API_KEY environment variable.

Example:
  claimlens check "The Eiffel Tower is in Paris"
  claimlens check "..." --json result.json --pretty
  claimlens check "..." --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Output flags
	checkCmd.Flags().StringVar(&outJSON, "json", "", "write result JSON to a file instead of stdout")
	checkCmd.Flags().BoolVar(&pretty, "pretty", true, "indent JSON output")

	// HTTP flags
	checkCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall check timeout")
	checkCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	checkCmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "max response bytes to read")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the article page cache")
	checkCmd.Flags().BoolVar(&enrich, "enrich", false, "fetch article pages for full text before analysis")
	checkCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")

	// LLM flags
	checkCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	claim := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.HTTP.Timeout = timeout
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	if enrich {
		cfg.Enrich.Enabled = true
	}

	if err := applyLLMFlags(cfg, llmEnabled, llmProvider, llmModel); err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", claim)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg, news.NewClient(cfg))

	result, err := p.CheckClaim(ctx, claim)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Verdict: %s (%d%% confidence, %d sources)\n",
			result.Verdict, result.Confidence, len(result.Sources))
		if result.LLM != nil && result.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated LLM summary using %s/%s\n", result.LLM.Provider, result.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	return writeResult(result, outJSON, pretty)
}

// writeResult renders a result as JSON to a file, or stdout when path
// is empty.
func writeResult(result *model.FactCheckResult, path string, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
