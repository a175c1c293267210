package model

import "time"

// Article is a retrieved news article, immutable once fetched.
// Articles have no identity beyond their position in the input
// sequence and are never deduplicated.
type Article struct {
	Title       string    `json:"title"`                 // Headline text
	URL         string    `json:"url,omitempty"`         // Canonical URL, may be empty
	Site        string    `json:"site"`                  // Originating domain or publisher name
	Body        string    `json:"body"`                  // Free text (description + content)
	PublishedAt time.Time `json:"publishedAt,omitempty"` // Unused by scoring, carried through
}

// EvidenceItem is an article selected as relevant to a verdict,
// annotated with a credibility score and a support flag.
type EvidenceItem struct {
	SourceName       string `json:"name"`             // = Article.Site
	SourceURL        string `json:"url,omitempty"`    // = Article.URL
	CredibilityScore int    `json:"credibilityScore"` // 0-10, from the credibility table
	SupportsVerdict  bool   `json:"supportsVerdict"`  // Whether it counts toward the verdict
}
