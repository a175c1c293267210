package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/claimlens/claimlens/internal/cache"
	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/util"
	"github.com/claimlens/claimlens/internal/worker"
)

// Enricher fetches article pages and replaces the truncated bodies the
// search API returns with the page's visible text. Fetches respect
// robots.txt, are rate-limited per publisher domain, and go through
// the layered cache so repeated checks don't re-hit publishers.
//
// Enrichment is best-effort: any failure leaves the article as-is.
type Enricher struct {
	httpClient    *http.Client
	robots        *util.RobotsChecker
	limiter       *worker.Limiter
	cache         cache.Cache
	userAgent     string
	maxBytes      int64
	respectRobots bool
}

// NewEnricher creates an enricher from configuration. pageCache may be
// nil to disable caching.
func NewEnricher(cfg *model.Config, pageCache cache.Cache) *Enricher {
	return &Enricher{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
		},
		robots:        util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		limiter:       worker.NewLimiter(cfg.Enrich.RequestsPerSecond, cfg.Enrich.Burst),
		cache:         pageCache,
		userAgent:     cfg.HTTP.UserAgent,
		maxBytes:      cfg.HTTP.MaxBodyBytes,
		respectRobots: cfg.Enrich.RespectRobots,
	}
}

// Enrich fetches each article's page and swaps in the extracted text
// when it is longer than the API snippet. Articles whose pages cannot
// be fetched keep their original body.
func (e *Enricher) Enrich(ctx context.Context, articles []model.Article) []model.Article {
	enriched := make([]model.Article, len(articles))
	copy(enriched, articles)

	for i := range enriched {
		if enriched[i].URL == "" {
			continue
		}

		body, err := e.fetchBody(ctx, enriched[i].URL)
		if err != nil {
			continue
		}

		if len(body) > len(enriched[i].Body) {
			enriched[i].Body = body
		}
	}

	return enriched
}

// fetchBody returns the visible text of the page at rawURL.
func (e *Enricher) fetchBody(ctx context.Context, rawURL string) (string, error) {
	if e.cache != nil {
		if cached, found := e.cache.Get(cache.Key(rawURL)); found {
			return string(cached), nil
		}
	}

	if e.respectRobots {
		allowed, crawlDelay, err := e.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return "", err
		}
		if !allowed {
			return "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
		if crawlDelay > 0 {
			e.limiter.SetDomainRate(util.Domain(rawURL), 1/crawlDelay.Seconds(), 1)
		}
	}

	if err := e.limiter.Wait(ctx, rawURL); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}

	body, err := ExtractText(string(raw))
	if err != nil {
		return "", err
	}

	if e.cache != nil {
		_ = e.cache.Set(cache.Key(rawURL), []byte(body), 0)
	}

	return body, nil
}

// ExtractText returns the visible text of an HTML document, skipping
// script, style, noscript and iframe subtrees.
func ExtractText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}
