// Package pipeline assembles fact-check results: retrieve articles,
// analyze the verdict, weight the evidence, and render a summary.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/claimlens/claimlens/internal/analyze"
	"github.com/claimlens/claimlens/internal/cache"
	"github.com/claimlens/claimlens/internal/credibility"
	"github.com/claimlens/claimlens/internal/llm"
	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/news"
	"github.com/claimlens/claimlens/internal/score"
)

// maxSources caps how many evidence articles are surfaced in a result.
const maxSources = 5

// fallbackSummary is used when no evidence was selected.
const fallbackSummary = "Insufficient reliable sources were found to verify this claim."

// Retriever produces candidate articles for a free-text claim. The
// network-bound retrieval step lives behind this interface so the
// assembly core stays synchronous and independently testable.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]model.Article, error)
}

// Pipeline orchestrates one fact-check: retrieval, verdict analysis,
// credibility weighting, confidence and summary assembly. Each
// invocation is stateless; a Pipeline is safe for concurrent use.
type Pipeline struct {
	retriever  Retriever
	analyzer   *analyze.Analyzer
	resolver   *credibility.Resolver
	enricher   *news.Enricher  // Optional article-page enrichment (nil if disabled)
	summarizer *llm.Summarizer // Optional LLM prose summary (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a pipeline with the given retriever. Enrichment
// and LLM summarization are constructed from config when enabled.
func NewPipeline(cfg *model.Config, retriever Retriever) *Pipeline {
	var enricher *news.Enricher
	if cfg.Enrich.Enabled {
		var pageCache cache.Cache
		if cfg.Cache.Enabled {
			pageCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cache.ResolveDir(cfg.Cache.Dir), cfg.Cache.DiskTTL)
		}
		enricher = news.NewEnricher(cfg, pageCache)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		retriever:  retriever,
		analyzer:   analyze.NewAnalyzer(),
		resolver:   credibility.NewResolver(cfg.Credibility),
		enricher:   enricher,
		summarizer: summarizer,
		config:     cfg,
	}
}

// CheckClaim retrieves articles for the claim and assembles a verdict.
// Retrieval failure fails the whole request; no partial results are
// ever returned.
func (p *Pipeline) CheckClaim(ctx context.Context, query string) (*model.FactCheckResult, error) {
	articles, err := p.retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("retrieve articles: %w", err)
	}

	if p.enricher != nil {
		// Enrichment is best-effort: articles it cannot fetch keep
		// their retrieved body text.
		articles = p.enricher.Enrich(ctx, articles)
	}

	result := p.Assemble(query, articles)

	// Optional prose summary, generated AFTER assembly. It never
	// affects verdict, confidence, sources, or the core summary.
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		llmSummary, err := p.summarizer.GenerateSummary(ctx, query, result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if llmSummary != nil {
			result.LLM = llmSummary
		}
	}

	return result, nil
}

// Assemble is the pure computation core: given a claim and a bag of
// already-retrieved articles, it decides the verdict, selects and
// weights evidence, and derives the confidence percentage. Given
// identical input it is deterministic except for LastUpdated.
func (p *Pipeline) Assemble(query string, articles []model.Article) *model.FactCheckResult {
	outcome := p.analyzer.Analyze(articles, query)

	selected := outcome.SupportingArticles
	if len(selected) > maxSources {
		selected = selected[:maxSources]
	}

	sources := make([]model.EvidenceItem, 0, len(selected))
	for _, article := range selected {
		sources = append(sources, model.EvidenceItem{
			SourceName:       article.Site,
			SourceURL:        article.URL,
			CredibilityScore: p.resolver.Resolve(article.Site),
			// Every selected evidence article counts as supporting the
			// aggregate verdict; per-article polarity is not carried.
			SupportsVerdict: true,
		})
	}

	return &model.FactCheckResult{
		Verdict:     outcome.Verdict,
		Confidence:  score.Confidence(sources),
		Summary:     buildSummary(outcome.Verdict, sources),
		Sources:     sources,
		LastUpdated: time.Now().UTC(),
	}
}

// buildSummary renders the one-sentence prose summary for a result.
func buildSummary(verdict model.Verdict, sources []model.EvidenceItem) string {
	if len(sources) == 0 {
		return fallbackSummary
	}

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.SourceName)
	}

	return fmt.Sprintf("Based on analysis of %d relevant sources, the claim appears to be %s. Key sources include %s.",
		len(sources), verdict.Human(), strings.Join(names, ", "))
}
