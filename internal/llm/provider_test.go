package llm

import (
	"strings"
	"testing"

	"github.com/claimlens/claimlens/internal/model"
)

func TestBuildPrompt(t *testing.T) {
	result := testResult()
	urls := []string{"https://reuters.com/a", "https://npr.org/b"}

	prompt := BuildPrompt("Water boils at 100C", result, urls)

	for _, want := range []string{
		"Water boils at 100C",
		"TRUE",
		"85/100",
		"https://reuters.com/a",
		"https://npr.org/b",
		"Reuters",
		"credibility 10/10",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_NoSources(t *testing.T) {
	result := &model.FactCheckResult{
		Verdict: model.VerdictInsufficientData,
		Summary: "Insufficient reliable sources were found to verify this claim.",
	}

	prompt := BuildPrompt("some claim", result, nil)
	if !strings.Contains(prompt, "(No source URLs available)") {
		t.Error("expected empty-allowlist marker")
	}
}

func TestExtractURLs(t *testing.T) {
	text := "See https://example.com/a and (https://example.com/b) plus https://example.com/a again, and https://example.com/c."

	urls := extractURLs(text)

	want := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}
	if len(urls) != len(want) {
		t.Fatalf("got %v, want %v", urls, want)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("urls[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestVerifyCitations(t *testing.T) {
	allowed := []string{"https://a.example", "https://b.example"}

	if err := verifyCitations([]string{"https://a.example"}, allowed); err != nil {
		t.Errorf("allowed citation rejected: %v", err)
	}
	if err := verifyCitations(nil, allowed); err != nil {
		t.Errorf("empty citations rejected: %v", err)
	}
	if err := verifyCitations([]string{"https://c.example"}, allowed); err == nil {
		t.Error("disallowed citation accepted")
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Errorf("empty provider should not error: %v", err)
	}
	if p != nil {
		t.Error("empty provider should be nil")
	}

	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("openai without API key should error")
	}

	p, err = NewProvider(Config{Provider: "OpenAI", APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("openai with key failed: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("name = %q", p.Name())
	}

	p, err = NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("ollama failed: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("name = %q", p.Name())
	}

	if _, err := NewProvider(Config{Provider: "bard"}); err == nil {
		t.Error("unknown provider should error")
	}
}

func TestConfigFromModel(t *testing.T) {
	mc := model.LLMConfig{
		Provider:     "ollama",
		Model:        "mistral",
		BaseURL:      "http://localhost:11434",
		Timeout:      15,
		StrictSource: true,
		MaxTokens:    250,
	}

	cfg := ConfigFromModel(mc)
	if cfg.Provider != "ollama" || cfg.Model != "mistral" || cfg.Timeout != 15 ||
		!cfg.StrictSource || cfg.MaxTokens != 250 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
