// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the answer-engine
// pipeline: source documents returned by the search provider (or
// synthesized offline), the composed answer, and the response envelope
// handed back to callers.
package types

import "time"

// SourceDocument is a single ranked web-search result. Documents are
// produced by the provider or fabricated offline and are read-only
// input to ranking and synthesis.
type SourceDocument struct {
	// Title is the document title as returned by the provider.
	Title string `json:"title" yaml:"title"`

	// URL is the canonical location of the document.
	URL string `json:"url" yaml:"url"`

	// Content is the long-form extracted text, when available.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// Snippet is a short excerpt, when available.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`

	// PublishedAt is the publication timestamp, when known.
	PublishedAt time.Time `json:"published_at,omitempty" yaml:"published_at,omitempty"`

	// RelevanceScore is a value between 0.0 and 1.0 indicating relevance
	// to the query. A missing score is treated as 0 when sorting.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`
}

// Text returns the best available body text for the document: full
// content when present, snippet otherwise.
func (d SourceDocument) Text() string {
	if d.Content != "" {
		return d.Content
	}
	return d.Snippet
}

// SynthesizedAnswer is the composed prose answer. Text contains zero or
// more "[n]" citation markers.
type SynthesizedAnswer struct {
	Text          string `json:"text" yaml:"text"`
	CitationCount int    `json:"citation_count" yaml:"citation_count"`
	WordCount     int    `json:"word_count" yaml:"word_count"`
}

// Origin records whether a response was produced from a live provider
// call or synthesized entirely offline.
type Origin string

const (
	OriginLive    Origin = "live"
	OriginOffline Origin = "offline"
)

// ResponseMetadata carries per-request bookkeeping attached to a response.
type ResponseMetadata struct {
	// RequestID uniquely identifies this invocation.
	RequestID string `json:"request_id" yaml:"request_id"`

	// Intent is the classified query intent (news, howto, factual,
	// local, research, general).
	Intent string `json:"intent" yaml:"intent"`

	// Origin marks the response as live or offline-synthesized.
	Origin Origin `json:"origin" yaml:"origin"`

	// TotalResults is the number of source documents in the response.
	TotalResults int `json:"total_results" yaml:"total_results"`

	// ProcessingTimeMs is the wall-clock duration of the whole search call.
	ProcessingTimeMs int64 `json:"processing_time_ms" yaml:"processing_time_ms"`
}

// SearchResponse is the full externally visible result of one search
// invocation. It is immutable once constructed; downstream consumers
// must not depend on any internal scoring state.
type SearchResponse struct {
	Query             string            `json:"query" yaml:"query"`
	Answer            SynthesizedAnswer `json:"answer" yaml:"answer"`
	Results           []SourceDocument  `json:"results" yaml:"results"`
	FollowUpQuestions []string          `json:"follow_up_questions" yaml:"follow_up_questions"`
	Metadata          ResponseMetadata  `json:"metadata" yaml:"metadata"`
}
