package model

import "time"

// Config holds the complete claimlens configuration
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Browser BrowserConfig `yaml:"browser"`
	LLM     LLMConfig     `yaml:"llm"`
	Review  ReviewConfig  `yaml:"review"`
	Cache   CacheConfig   `yaml:"cache"`
	Rate    RateConfig    `yaml:"rate"`
	Output  OutputConfig  `yaml:"output"`
}

// HTTPConfig controls the direct-mode page fetcher
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// BrowserConfig controls the rendered (browser) collaborator mode
type BrowserConfig struct {
	Enabled           bool          `yaml:"enabled"`            // Use a real browser session; falls back to direct mode when off
	Headless          bool          `yaml:"headless"`
	ControlURL        string        `yaml:"control_url"`        // Attach to an existing DevTools endpoint instead of launching
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`
	MaxPageChars      int           `yaml:"max_page_chars"` // Cap on captured page text handed to extraction
}

// LLMConfig selects the model backing page analysis and copy review
type LLMConfig struct {
	Provider   string `yaml:"provider"` // openai, anthropic, ollama
	Model      string `yaml:"model"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Timeout    int    `yaml:"timeout"` // seconds
	MaxTokens  int    `yaml:"max_tokens"`
	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
	NoProxy    string `yaml:"no_proxy"`
}

// ReviewConfig controls the prose-quality reviewer
type ReviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"` // Overrides LLM.Model for reviews when set
}

// CacheConfig controls caching of direct-mode fetches
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"` // Disk layer location; memory-only when empty
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// RateConfig limits navigation frequency per destination domain
type RateConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OutputConfig controls rendering of review reports
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose"`
	JSONPath string `yaml:"json_path"` // Write the full report as JSON when set
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      15 * time.Second,
			UserAgent:    "Claimlens/0.1 (+https://github.com/claimlens/claimlens)",
			MaxBodyBytes: 2_000_000,
		},
		Browser: BrowserConfig{
			Enabled:           false,
			Headless:          true,
			NavigationTimeout: 30 * time.Second,
			MaxPageChars:      8000,
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Review: ReviewConfig{
			Enabled: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Rate: RateConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
	}
}
