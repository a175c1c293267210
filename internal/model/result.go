package model

import (
	"strings"
	"time"
)

// Verdict is the classification assigned to a claim.
type Verdict string

const (
	VerdictTrue             Verdict = "TRUE"
	VerdictFalse            Verdict = "FALSE"
	VerdictPartiallyTrue    Verdict = "PARTIALLY_TRUE"
	VerdictInsufficientData Verdict = "INSUFFICIENT_DATA"
)

// Human returns the verdict in prose form: lowercase, underscores as spaces.
func (v Verdict) Human() string {
	return strings.ToLower(strings.ReplaceAll(string(v), "_", " "))
}

// VerdictOutcome is the transient result of analyzing an article set.
// SupportingArticles is an order-preserving subsequence of the input;
// it is capped downstream for display, not here.
type VerdictOutcome struct {
	Verdict            Verdict
	SupportingArticles []Article
}

// FactCheckResult is the sole output of the core.
//
// Invariants: Confidence is always a function solely of Sources and is
// never set independently; if Sources is empty, Confidence is 0.
type FactCheckResult struct {
	Verdict     Verdict        `json:"verdict"`
	Confidence  int            `json:"confidence"` // 0-100
	Summary     string         `json:"summary"`
	Sources     []EvidenceItem `json:"sources"`     // At most 5, input order preserved
	LastUpdated time.Time      `json:"lastUpdated"` // Set at assembly time

	LLM *LLMSummary `json:"llm,omitempty"` // Optional prose summary, never affects the fields above
}

// LLMSummary contains an optional LLM-generated prose summary.
// CRITICAL: it never affects verdict or confidence and is clearly separated.
type LLMSummary struct {
	Enabled      bool     `json:"enabled"`
	Provider     string   `json:"provider,omitempty"` // openai, ollama
	Model        string   `json:"model,omitempty"`
	StrictSource bool     `json:"strict_source"`        // Whether citation enforcement was enabled
	SummaryMD    string   `json:"summary_md,omitempty"` // Markdown summary
	Warnings     []string `json:"warnings,omitempty"`   // Any issues (e.g., citation leaks detected)
}
