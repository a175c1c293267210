// Package llm generates optional prose summaries of fact-check
// results. Providers operate under strict source mode: the summary may
// only cite URLs from the evidence the check actually used.
package llm

import (
	"context"
	"fmt"

	"github.com/claimlens/claimlens/internal/model"
)

// Provider is a single LLM backend.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a prose summary of a fact-check result
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM summarization
type SummarizeRequest struct {
	// Claim is the statement that was checked
	Claim string

	// Result is the deterministic fact-check outcome being summarized
	Result *model.FactCheckResult

	// SourceURLs is the STRICT allowlist of URLs the LLM can cite
	SourceURLs []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	// Summary is the generated summary text
	Summary string

	// CitedURLs are the URLs the LLM actually cited (for verification)
	CitedURLs []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// StrictSource enforces the URL allowlist
	StrictSource bool

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:     "", // Disabled by default
		Model:        "",
		Timeout:      30,
		StrictSource: true,
		MaxTokens:    500,
	}
}

// BuildPrompt constructs the default summarization prompt. The prompt
// carries the deterministic verdict; the model restates and explains,
// it never re-judges.
func BuildPrompt(claim string, result *model.FactCheckResult, sourceURLs []string) string {
	prompt := fmt.Sprintf(`You are summarizing an automated fact-check. The verdict below was computed from news coverage - restate and explain it, do not re-evaluate the claim yourself.

CRITICAL RULES:
1. You MUST ONLY cite URLs from this allowed list:
%s

2. DO NOT infer, speculate, or cite external sources beyond this list.
3. If coverage is thin or missing, state that explicitly.
4. Describe what the sources report, not your own judgment of the claim.

Fact-check:
- Claim: %s
- Verdict: %s
- Confidence: %d/100
- Sources considered: %d
`, joinURLs(sourceURLs), claim, result.Verdict, result.Confidence, len(result.Sources))

	for i, src := range result.Sources {
		if i >= 5 {
			break
		}
		prompt += fmt.Sprintf("- %s (credibility %d/10)\n", src.SourceName, src.CredibilityScore)
	}

	prompt += "\nProvide a 3-4 sentence summary of what the coverage shows."

	return prompt
}

const systemPrompt = "You are a helpful assistant that summarizes automated fact-checks with strict adherence to the allowed source list."

func joinURLs(urls []string) string {
	if len(urls) == 0 {
		return "(No source URLs available)"
	}
	result := ""
	for i, url := range urls {
		if i >= 20 { // Limit to first 20 to avoid token bloat
			result += fmt.Sprintf("\n... and %d more URLs", len(urls)-20)
			break
		}
		result += fmt.Sprintf("\n- %s", url)
	}
	return result
}
