// Package analyze classifies a claim against a set of retrieved articles
// by scanning each article's text for verdict signal keywords.
package analyze

import (
	"strings"

	"github.com/claimlens/claimlens/internal/model"
)

// fallbackEvidenceCount is how many articles are surfaced as evidence
// when no article matched any keyword.
const fallbackEvidenceCount = 3

// Analyzer scans article text for signal keywords and classifies the
// aggregate verdict. It is stateless after construction and safe for
// concurrent use.
type Analyzer struct {
	positive []string
	negative []string
}

// NewAnalyzer creates an analyzer with the fixed keyword sets.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		positive: []string{
			"confirmed", "verified", "true", "accurate", "correct", "proven",
		},
		negative: []string{
			"false", "debunked", "fake", "misinformation", "hoax", "incorrect", "untrue",
		},
	}
}

// Analyze scans each article's title+body for signal keywords,
// accumulates global positive/negative hit tallies, selects the articles
// carrying any signal as evidence (input order preserved), and
// classifies the verdict from the aggregate counts.
//
// The query is accepted for interface symmetry but never scored:
// keyword matching is purely a function of each article's own text.
// Missing article fields are treated as empty text; Analyze never fails.
func (a *Analyzer) Analyze(articles []model.Article, query string) model.VerdictOutcome {
	if len(articles) == 0 {
		return model.VerdictOutcome{Verdict: model.VerdictInsufficientData}
	}

	var (
		positiveHits int
		negativeHits int
		evidence     []model.Article
	)

	for _, article := range articles {
		text := strings.ToLower(article.Title + " " + article.Body)

		// Each keyword counts once per article; the global tallies
		// count keyword hits, not articles.
		local := 0
		for _, keyword := range a.positive {
			if strings.Contains(text, keyword) {
				local++
				positiveHits++
			}
		}
		for _, keyword := range a.negative {
			if strings.Contains(text, keyword) {
				local--
				negativeHits++
			}
		}

		// A balanced article (equal hits both ways) carries no net
		// signal and is not evidence, although it still moved the
		// global tallies.
		if local != 0 {
			evidence = append(evidence, article)
		}
	}

	verdict := classify(positiveHits, negativeHits)

	// When nothing matched, surface the first few articles anyway so
	// the caller has something to show next to INSUFFICIENT_DATA. This
	// deliberately overrides the (empty) evidence selection above.
	if verdict == model.VerdictInsufficientData {
		evidence = articles[:min(fallbackEvidenceCount, len(articles))]
	}

	return model.VerdictOutcome{
		Verdict:            verdict,
		SupportingArticles: evidence,
	}
}

// classify maps the global hit tallies to a verdict. A side needs a
// 1.5x majority to win outright; any signal short of that is
// PARTIALLY_TRUE, and no signal at all is INSUFFICIENT_DATA.
func classify(positive, negative int) model.Verdict {
	switch {
	case float64(positive) > 1.5*float64(negative):
		return model.VerdictTrue
	case float64(negative) > 1.5*float64(positive):
		return model.VerdictFalse
	case positive > 0 || negative > 0:
		return model.VerdictPartiallyTrue
	default:
		return model.VerdictInsufficientData
	}
}
