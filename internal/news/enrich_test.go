package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claimlens/claimlens/internal/model"
)

func TestExtractText(t *testing.T) {
	htmlContent := `<html><head>
		<script>var x = 1;</script>
		<style>body { color: red; }</style>
	</head><body>
		<h1>Headline</h1>
		<p>First paragraph.</p>
		<noscript>enable javascript</noscript>
		<p>Second paragraph.</p>
	</body></html>`

	text, err := ExtractText(htmlContent)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}

	for _, want := range []string{"Headline", "First paragraph.", "Second paragraph."} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in extracted text", want)
		}
	}
	for _, reject := range []string{"var x", "color: red", "enable javascript"} {
		if strings.Contains(text, reject) {
			t.Errorf("did not expect %q in extracted text", reject)
		}
	}
}

func TestEnricher_Enrich(t *testing.T) {
	page := `<html><body><article>` +
		strings.Repeat("The committee confirmed the report in full detail. ", 5) +
		`</article></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	cfg := model.DefaultConfig()
	cfg.Enrich.Enabled = true
	cfg.Enrich.RequestsPerSecond = 100

	enricher := NewEnricher(cfg, nil)

	articles := []model.Article{
		{Title: "Report", URL: server.URL + "/story", Site: "example.com", Body: "short snippet"},
		{Title: "No URL", Site: "example.com", Body: "unchanged"},
	}

	enriched := enricher.Enrich(context.Background(), articles)

	if len(enriched) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(enriched))
	}
	if !strings.Contains(enriched[0].Body, "committee confirmed") {
		t.Errorf("expected enriched body, got %q", enriched[0].Body)
	}
	if enriched[1].Body != "unchanged" {
		t.Errorf("article without URL should be untouched, got %q", enriched[1].Body)
	}

	// Input slice must not be mutated.
	if articles[0].Body != "short snippet" {
		t.Errorf("input slice was mutated: %q", articles[0].Body)
	}
}

func TestEnricher_Enrich_KeepsLongerSnippet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><body>tiny</body></html>`))
	}))
	defer server.Close()

	cfg := model.DefaultConfig()
	cfg.Enrich.RequestsPerSecond = 100
	enricher := NewEnricher(cfg, nil)

	longBody := strings.Repeat("already detailed snippet ", 10)
	articles := []model.Article{{URL: server.URL + "/story", Body: longBody}}

	enriched := enricher.Enrich(context.Background(), articles)
	if enriched[0].Body != longBody {
		t.Errorf("shorter page text should not replace the snippet")
	}
}

func TestEnricher_Enrich_RespectsRobots(t *testing.T) {
	var pageFetched bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /\n"))
			return
		}
		pageFetched = true
		_, _ = w.Write([]byte(`<html><body>` + strings.Repeat("secret content ", 20) + `</body></html>`))
	}))
	defer server.Close()

	cfg := model.DefaultConfig()
	cfg.Enrich.RequestsPerSecond = 100
	enricher := NewEnricher(cfg, nil)

	articles := []model.Article{{URL: server.URL + "/story", Body: "snippet"}}
	enriched := enricher.Enrich(context.Background(), articles)

	if pageFetched {
		t.Error("page was fetched despite robots.txt disallow")
	}
	if enriched[0].Body != "snippet" {
		t.Errorf("disallowed article should keep its snippet, got %q", enriched[0].Body)
	}
}

func TestEnricher_Enrich_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	cfg := model.DefaultConfig()
	cfg.Enrich.RequestsPerSecond = 100
	enricher := NewEnricher(cfg, nil)

	articles := []model.Article{{URL: server.URL + "/story", Body: "snippet"}}
	enriched := enricher.Enrich(context.Background(), articles)

	if enriched[0].Body != "snippet" {
		t.Errorf("failed fetch should keep the snippet, got %q", enriched[0].Body)
	}
}
