package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claimlens/claimlens/internal/model"
)

func testConfig(baseURL string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.News.BaseURL = baseURL
	cfg.News.APIKey = "test-key"
	cfg.News.PageSize = 5
	return cfg
}

func TestClient_Retrieve(t *testing.T) {
	var gotPath, gotQuery, gotAPIKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotAPIKey = r.Header.Get("X-Api-Key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{
					"source": {"name": "Reuters"},
					"title": "Study confirmed",
					"description": "Researchers verified the finding.",
					"content": "Full story text here.",
					"url": "https://www.reuters.com/science/study",
					"publishedAt": "2026-08-20T10:30:00Z"
				},
				{
					"source": {"name": "Some Blog"},
					"title": "Hot take",
					"description": "",
					"content": "Opinion content.",
					"url": "https://someblog.example/post",
					"publishedAt": "not-a-timestamp"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	articles, err := client.Retrieve(context.Background(), "study finding")
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}

	if gotPath != "/v2/everything" {
		t.Errorf("path = %q, want /v2/everything", gotPath)
	}
	if gotQuery != "study finding" {
		t.Errorf("query = %q, want %q", gotQuery, "study finding")
	}
	if gotAPIKey != "test-key" {
		t.Errorf("api key header = %q, want test-key", gotAPIKey)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}

	first := articles[0]
	if first.Site != "Reuters" {
		t.Errorf("site = %q, want Reuters", first.Site)
	}
	if first.Body != "Researchers verified the finding. Full story text here." {
		t.Errorf("unexpected body: %q", first.Body)
	}
	want := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	if !first.PublishedAt.Equal(want) {
		t.Errorf("publishedAt = %v, want %v", first.PublishedAt, want)
	}

	second := articles[1]
	if second.Body != "Opinion content." {
		t.Errorf("body with empty description = %q", second.Body)
	}
	if !second.PublishedAt.IsZero() {
		t.Errorf("malformed timestamp should map to zero time, got %v", second.PublishedAt)
	}
}

func TestClient_Retrieve_MissingAPIKey(t *testing.T) {
	cfg := testConfig("https://newsapi.org")
	cfg.News.APIKey = ""
	client := NewClient(cfg)

	if _, err := client.Retrieve(context.Background(), "claim"); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestClient_Retrieve_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	if _, err := client.Retrieve(context.Background(), "claim"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestClient_Retrieve_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid", "message": "bad key"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	if _, err := client.Retrieve(context.Background(), "claim"); err == nil {
		t.Fatal("expected error for provider error status")
	}
}

func TestJoinBody(t *testing.T) {
	tests := []struct {
		name        string
		description string
		content     string
		want        string
	}{
		{"both", "desc", "content", "desc content"},
		{"description only", "desc", "", "desc"},
		{"content only", "", "content", "content"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinBody(tt.description, tt.content); got != tt.want {
				t.Errorf("joinBody(%q, %q) = %q, want %q", tt.description, tt.content, got, tt.want)
			}
		})
	}
}
