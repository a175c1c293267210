package llm

import (
	"context"
	"fmt"

	"github.com/claimlens/claimlens/internal/model"
)

// Summarizer wraps a provider and turns fact-check results into the
// model.LLMSummary attached to API and CLI output.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. A config with
// no provider yields a disabled summarizer, not an error.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary produces an LLM summary of a computed fact-check
// result. Only URLs already present in the result's sources may be
// cited.
func (s *Summarizer) GenerateSummary(ctx context.Context, claim string, result *model.FactCheckResult) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	sourceURLs := make([]string, 0, len(result.Sources))
	for _, src := range result.Sources {
		if src.SourceURL != "" {
			sourceURLs = append(sourceURLs, src.SourceURL)
		}
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Claim:      claim,
		Result:     result,
		SourceURLs: sourceURLs,
		Model:      s.config.Model,
		MaxTokens:  s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	summary := &model.LLMSummary{
		Enabled:      true,
		Provider:     s.provider.Name(),
		Model:        resp.Model,
		StrictSource: s.config.StrictSource,
		SummaryMD:    resp.Summary,
	}

	if len(resp.CitedURLs) == 0 {
		summary.Warnings = append(summary.Warnings, "summary cites no sources")
	}

	return summary, nil
}
