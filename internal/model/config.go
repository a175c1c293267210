package model

import "time"

// Config is the full ClaimLens configuration. A single immutable Config
// is built once at process start (defaults, config file, env, flags) and
// passed by reference into the components; it is never mutated afterward.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	News        NewsConfig        `yaml:"news" mapstructure:"news"`
	Credibility CredibilityConfig `yaml:"credibility" mapstructure:"credibility"`
	Enrich      EnrichConfig      `yaml:"enrich" mapstructure:"enrich"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig holds settings shared by all outbound HTTP clients.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// NewsConfig configures the article-retrieval provider.
type NewsConfig struct {
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
	APIKey   string `yaml:"api_key" mapstructure:"api_key"` // Prefer NEWS_API_KEY env var
	PageSize int    `yaml:"page_size" mapstructure:"page_size"`
	Language string `yaml:"language" mapstructure:"language"`
}

// CredibilityRule is one (domain substring, score) pair. Rules are an
// ORDERED list, not a map: substrings may overlap and the first match
// must win deterministically.
type CredibilityRule struct {
	Pattern string `yaml:"pattern" mapstructure:"pattern"`
	Score   int    `yaml:"score" mapstructure:"score"`
}

// CredibilityConfig configures the source credibility table.
type CredibilityConfig struct {
	Rules        []CredibilityRule `yaml:"rules,omitempty" mapstructure:"rules"` // Empty means built-in table
	DefaultScore int               `yaml:"default_score" mapstructure:"default_score"`
}

// EnrichConfig configures optional article-page enrichment.
type EnrichConfig struct {
	Enabled           bool    `yaml:"enabled" mapstructure:"enabled"`
	RespectRobots     bool    `yaml:"respect_robots" mapstructure:"respect_robots"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig configures the layered retrieval cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig bounds concurrent work.
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// LLMConfig configures the optional prose summarizer.
type LLMConfig struct {
	Provider     string `yaml:"provider" mapstructure:"provider"` // "", openai, ollama
	Model        string `yaml:"model" mapstructure:"model"`
	APIKey       string `yaml:"api_key" mapstructure:"api_key"` // Prefer env vars
	BaseURL      string `yaml:"base_url" mapstructure:"base_url"`
	Timeout      int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	StrictSource bool   `yaml:"strict_source" mapstructure:"strict_source"`
	MaxTokens    int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ServerConfig configures the HTTP transport shell.
type ServerConfig struct {
	Addr          string        `yaml:"addr" mapstructure:"addr"`
	AllowedOrigin string        `yaml:"allowed_origin" mapstructure:"allowed_origin"`
	CheckTimeout  time.Duration `yaml:"check_timeout" mapstructure:"check_timeout"`
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	Pretty  bool `yaml:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "ClaimLens/0.1 (+https://github.com/claimlens/claimlens)",
			MaxBodyBytes: 2_000_000,
		},
		News: NewsConfig{
			BaseURL:  "https://newsapi.org",
			PageSize: 10,
			Language: "en",
		},
		Credibility: CredibilityConfig{
			DefaultScore: 3,
		},
		Enrich: EnrichConfig{
			Enabled:           false,
			RespectRobots:     true,
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.claimlens/cache at startup
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		LLM: LLMConfig{
			Provider:     "", // Disabled by default
			Timeout:      30,
			StrictSource: true,
			MaxTokens:    500,
		},
		Server: ServerConfig{
			Addr:          ":8080",
			AllowedOrigin: "*",
			CheckTimeout:  time.Minute,
		},
	}
}
