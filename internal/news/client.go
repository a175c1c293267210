// Package news retrieves candidate articles for a claim from a
// NewsAPI-compatible search provider.
package news

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/util"
)

// Client fetches articles from a NewsAPI-compatible /v2/everything
// endpoint. It implements the pipeline's Retriever interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	pageSize   int
	language   string
	maxBytes   int64
}

// NewClient creates a news client from configuration.
func NewClient(cfg *model.Config) *Client {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		baseURL:   strings.TrimSuffix(cfg.News.BaseURL, "/"),
		apiKey:    cfg.News.APIKey,
		userAgent: cfg.HTTP.UserAgent,
		pageSize:  cfg.News.PageSize,
		language:  cfg.News.Language,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
	}
}

// searchResponse mirrors the provider's /v2/everything payload.
type searchResponse struct {
	Status       string           `json:"status"`
	Code         string           `json:"code,omitempty"`
	Message      string           `json:"message,omitempty"`
	TotalResults int              `json:"totalResults"`
	Articles     []articlePayload `json:"articles"`
}

type articlePayload struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Retrieve fetches up to pageSize articles matching the query. A
// non-success provider response fails the whole request with a wrapped
// error; nothing is retried here.
func (c *Client) Retrieve(ctx context.Context, query string) ([]model.Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("news API key not configured (set NEWS_API_KEY)")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("sortBy", "relevancy")
	if c.language != "" {
		params.Set("language", c.language)
	}

	endpoint := c.baseURL + "/v2/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("provider error %s: %s", payload.Code, payload.Message)
	}

	articles := make([]model.Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, model.Article{
			Title:       a.Title,
			URL:         a.URL,
			Site:        a.Source.Name,
			Body:        joinBody(a.Description, a.Content),
			PublishedAt: parseTimestamp(a.PublishedAt),
		})
	}

	return articles, nil
}

// joinBody combines the provider's description and content fields into
// one free-text body. Either may be absent.
func joinBody(description, content string) string {
	switch {
	case description == "":
		return content
	case content == "":
		return description
	default:
		return description + " " + content
	}
}

// parseTimestamp parses the provider's publishedAt field. A malformed
// or absent timestamp maps to the zero time; scoring never reads it.
func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
