package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "answer-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchDepth selects the provider's search depth mode.
type SearchDepth string

const (
	DepthBasic    SearchDepth = "basic"
	DepthAdvanced SearchDepth = "advanced"
)

// ClientConfig holds settings for the search client.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the provider search endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is the provider bearer token. A missing or placeholder
	// value switches the client to offline synthesis. Never logged.
	APIKey string `json:"-" yaml:"-"`

	// MaxResults is the default number of results requested (default 10).
	// Caller overrides are clamped to MaxResultsCap.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// SearchDepth is the default depth mode: basic or advanced.
	SearchDepth SearchDepth `json:"search_depth" yaml:"search_depth"`

	// NewsDays is the default recency window, in days, attached to
	// news-intent requests (default 7).
	NewsDays int `json:"news_days" yaml:"news_days"`
}

// MaxResultsCap is the hard upper bound on requested results,
// regardless of caller input.
const MaxResultsCap = 50

// QualityGateConfig holds the thresholds of the accept/augment/regenerate
// decision applied to provider-supplied answers. The values are
// empirically tuned; treat them as configuration, not derivation.
type QualityGateConfig struct {
	// MinAcceptChars is the minimum answer length for verbatim acceptance.
	MinAcceptChars int `json:"min_accept_chars" yaml:"min_accept_chars"`

	// MinAcceptCitations is the minimum number of distinct citation
	// markers for verbatim acceptance.
	MinAcceptCitations int `json:"min_accept_citations" yaml:"min_accept_citations"`

	// MinAugmentChars is the minimum answer length for the augment path;
	// anything shorter is fully regenerated.
	MinAugmentChars int `json:"min_augment_chars" yaml:"min_augment_chars"`

	// AugmentMaxSentences is the maximum number of sentences mined from
	// result documents when augmenting a short answer.
	AugmentMaxSentences int `json:"augment_max_sentences" yaml:"augment_max_sentences"`

	// AugmentSourceDocs is the number of top result documents mined
	// during augmentation.
	AugmentSourceDocs int `json:"augment_source_docs" yaml:"augment_source_docs"`
}

// DefaultQualityGate returns the tuned gate thresholds.
func DefaultQualityGate() QualityGateConfig {
	return QualityGateConfig{
		MinAcceptChars:      200,
		MinAcceptCitations:  2,
		MinAugmentChars:     80,
		AugmentMaxSentences: 2,
		AugmentSourceDocs:   3,
	}
}

// HistoryConfig holds settings for the local search history store.
type HistoryConfig struct {
	// DBPath is the SQLite database file (default "history/answers.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// DefaultLimit is the default number of entries listed (default 20).
	DefaultLimit int `json:"default_limit" yaml:"default_limit"`
}

// EngineConfig groups all component configurations.
type EngineConfig struct {
	Client  ClientConfig      `json:"client" yaml:"client"`
	Gate    QualityGateConfig `json:"gate" yaml:"gate"`
	History HistoryConfig     `json:"history" yaml:"history"`
}
