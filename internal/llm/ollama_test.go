package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claimlens/claimlens/internal/model"
)

func testResult() *model.FactCheckResult {
	return &model.FactCheckResult{
		Verdict:    model.VerdictTrue,
		Confidence: 85,
		Summary:    "Based on analysis of 2 relevant sources, the claim appears to be true. Key sources include Reuters, NPR.",
		Sources: []model.EvidenceItem{
			{SourceName: "Reuters", SourceURL: "https://reuters.com/a", CredibilityScore: 10, SupportsVerdict: true},
			{SourceName: "NPR", SourceURL: "https://npr.org/b", CredibilityScore: 9, SupportsVerdict: true},
		},
	}
}

func TestOllamaProvider_Summarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "llama3.1:8b" {
			t.Errorf("model = %q", req.Model)
		}
		if req.Stream {
			t.Error("expected non-streaming request")
		}
		if !strings.Contains(req.Prompt, "https://reuters.com/a") {
			t.Error("prompt missing allowed source URL")
		}

		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:           "llama3.1:8b",
			Response:        "Coverage from https://reuters.com/a supports the claim.",
			Done:            true,
			PromptEvalCount: 100,
			EvalCount:       20,
		})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{
		Provider:     "ollama",
		Model:        "llama3.1:8b",
		BaseURL:      server.URL,
		StrictSource: true,
	})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	result := testResult()
	resp, err := provider.Summarize(context.Background(), SummarizeRequest{
		Claim:      "the claim",
		Result:     result,
		SourceURLs: []string{"https://reuters.com/a", "https://npr.org/b"},
	})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if !strings.Contains(resp.Summary, "supports the claim") {
		t.Errorf("unexpected summary: %q", resp.Summary)
	}
	if len(resp.CitedURLs) != 1 || resp.CitedURLs[0] != "https://reuters.com/a" {
		t.Errorf("cited URLs = %v", resp.CitedURLs)
	}
	if resp.TokensUsed != 120 {
		t.Errorf("tokens = %d, want 120", resp.TokensUsed)
	}
}

func TestOllamaProvider_Summarize_CitationLeak(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:    "llama3.1:8b",
			Response: "See https://evil.example/fabricated for details.",
			Done:     true,
		})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{
		Model:        "llama3.1:8b",
		BaseURL:      server.URL,
		StrictSource: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = provider.Summarize(context.Background(), SummarizeRequest{
		Claim:      "the claim",
		Result:     testResult(),
		SourceURLs: []string{"https://reuters.com/a"},
	})
	if err == nil {
		t.Fatal("expected citation leak error")
	}
	if !strings.Contains(err.Error(), "CITATION LEAK") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOllamaProvider_Summarize_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{Model: "missing", BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}

	_, err = provider.Summarize(context.Background(), SummarizeRequest{
		Claim:  "the claim",
		Result: testResult(),
	})
	if err == nil {
		t.Fatal("expected API error")
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOllamaProvider_Summarize_NoModel(t *testing.T) {
	provider, err := NewOllamaProvider(Config{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := provider.Summarize(context.Background(), SummarizeRequest{
		Claim:  "the claim",
		Result: testResult(),
	}); err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"models": []}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Error("expected provider to be available")
	}

	server.Close()
	if provider.IsAvailable(context.Background()) {
		t.Error("expected provider to be unavailable after server close")
	}
}
