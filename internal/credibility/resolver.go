// Package credibility maps source identifiers to trust scores using a
// fixed ordered table of known-domain substrings.
package credibility

import (
	"strings"

	"github.com/claimlens/claimlens/internal/model"
)

// defaultRules is the built-in credibility table. Order matters: entries
// are checked top to bottom and the first matching substring wins, so a
// specific domain is never shadowed by a more generic token below it.
var defaultRules = []model.CredibilityRule{
	{Pattern: "reuters.com", Score: 10},
	{Pattern: "apnews.com", Score: 10},
	{Pattern: "bbc.com", Score: 9},
	{Pattern: "npr.org", Score: 9},
	{Pattern: "cnn.com", Score: 8},
	{Pattern: "nytimes.com", Score: 8},
	{Pattern: "washingtonpost.com", Score: 8},
	{Pattern: "wsj.com", Score: 8},
	{Pattern: "theguardian.com", Score: 7},
	{Pattern: "abcnews.go.com", Score: 7},
	{Pattern: "cbsnews.com", Score: 7},
	{Pattern: "nbcnews.com", Score: 7},
	{Pattern: "usatoday.com", Score: 6},
	{Pattern: "fox news", Score: 5},
	{Pattern: "breitbart.com", Score: 2},
	{Pattern: "infowars.com", Score: 1},
}

// DefaultScore is returned for sources matching no table entry.
const DefaultScore = 3

// Resolver resolves site strings to credibility scores in [0,10].
// The rule table is fixed at construction and never mutated.
type Resolver struct {
	rules        []model.CredibilityRule
	defaultScore int
}

// NewResolver creates a resolver from configuration. An empty rule list
// selects the built-in table; a zero default score falls back to 3.
func NewResolver(cfg model.CredibilityConfig) *Resolver {
	rules := cfg.Rules
	if len(rules) == 0 {
		rules = defaultRules
	}
	def := cfg.DefaultScore
	if def == 0 {
		def = DefaultScore
	}
	return &Resolver{
		rules:        rules,
		defaultScore: def,
	}
}

// NewDefaultResolver creates a resolver over the built-in table.
func NewDefaultResolver() *Resolver {
	return NewResolver(model.CredibilityConfig{})
}

// Resolve returns the credibility score for a site string. The site is
// lowercased and checked against each rule's pattern as a substring, in
// declaration order; the first match wins. Unmatched sites get the
// default score. Resolve never fails and has no side effects.
func (r *Resolver) Resolve(site string) int {
	normalized := strings.ToLower(site)
	for _, rule := range r.rules {
		if strings.Contains(normalized, rule.Pattern) {
			return rule.Score
		}
	}
	return r.defaultScore
}
