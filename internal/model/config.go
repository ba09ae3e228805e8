package model

import "time"

// Config holds the complete TrustLens configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Tables      TablesConfig      `yaml:"tables"`
	FactCheck   FactCheckConfig   `yaml:"fact_check"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls the article fetcher
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls"`
	HTTPProxy     string        `yaml:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy"`
	RespectRobots bool          `yaml:"respect_robots"`
}

// CacheConfig controls fetch and fact-check response caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// TablesConfig points at optional JSON overrides for the pattern tables.
// Empty or unreadable paths fall back to the built-in defaults.
type TablesConfig struct {
	BiasPhrasesPath       string `yaml:"bias_phrases_path"`
	PoliticalTermsPath    string `yaml:"political_terms_path"`
	EmotionalTriggersPath string `yaml:"emotional_triggers_path"`
	UrgencyPatternsPath   string `yaml:"urgency_patterns_path"`
	FearPatternsPath      string `yaml:"fear_patterns_path"`
	ClickbaitPatternsPath string `yaml:"clickbait_patterns_path"`
	PropagandaPath        string `yaml:"propaganda_path"`
	HedgingPath           string `yaml:"hedging_path"`
	SensationalistPath    string `yaml:"sensationalist_path"`
	KnownClaimsPath       string `yaml:"known_claims_path"`
}

// FactCheckConfig controls the external fact-check collaborator
type FactCheckConfig struct {
	APIKey            string        `yaml:"api_key"`
	Endpoint          string        `yaml:"endpoint"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
}

// ScoringConfig overrides issue weights and metadata factors
type ScoringConfig struct {
	IssueWeights    map[string]float64 `yaml:"issue_weights"`
	MetadataFactors MetadataFactors    `yaml:"metadata_factors"`
}

// MetadataFactors weight the metadata-level score adjustments
type MetadataFactors struct {
	BiasLevel             float64 `yaml:"bias_level"`
	EmotionalManipulation float64 `yaml:"emotional_manipulation"`
	FactualAccuracy       float64 `yaml:"factual_accuracy"`
	LinguisticPatterns    float64 `yaml:"linguistic_patterns"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// LLMConfig controls the optional narrative addendum.
// The addendum is generated after scoring and never affects the score.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "TrustLens/0.1 (+https://github.com/ppiankov/trustlens)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".trustlens-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		FactCheck: FactCheckConfig{
			Endpoint:          "https://factchecktools.googleapis.com/v1alpha1/claims:search",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 2,
			Burst:             5,
			CacheTTL:          24 * time.Hour,
		},
		Scoring: ScoringConfig{
			MetadataFactors: MetadataFactors{
				BiasLevel:             0.2,
				EmotionalManipulation: 0.2,
				FactualAccuracy:       0.4,
				LinguisticPatterns:    0.2,
			},
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}

// Options selects which detectors run; all default to true
type Options struct {
	CheckFacts                  bool `json:"check_facts"`
	AnalyzeBias                 bool `json:"analyze_bias"`
	DetectEmotionalManipulation bool `json:"detect_emotional_manipulation"`
	AnalyzeLinguisticPatterns   bool `json:"analyze_linguistic_patterns"`
}

// DefaultOptions enables every detector
func DefaultOptions() Options {
	return Options{
		CheckFacts:                  true,
		AnalyzeBias:                 true,
		DetectEmotionalManipulation: true,
		AnalyzeLinguisticPatterns:   true,
	}
}
