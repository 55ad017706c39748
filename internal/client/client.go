// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package client is the orchestration boundary of the answer engine: it
// validates input, classifies intent, performs the timeout-bounded
// provider call, maps failures to the typed error taxonomy, and falls
// back to fully offline synthesis when no credentials are configured.
//
// Missing or placeholder credentials are the only condition that
// triggers the offline path. A configured but failing provider surfaces
// its typed error to the caller so that "we degraded gracefully" and
// "the request actually failed" stay distinguishable.
package client

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ARMAND-cod-eng/answer-engine/internal/intent"
	"github.com/ARMAND-cod-eng/answer-engine/internal/rank"
	"github.com/ARMAND-cod-eng/answer-engine/internal/searcherr"
	"github.com/ARMAND-cod-eng/answer-engine/internal/synthesize"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

// Options are the caller-tunable parameters of one search invocation.
type Options struct {
	// IncludeNews requests news-topic results regardless of intent.
	IncludeNews bool

	// SearchDepth overrides the configured depth (basic or advanced).
	SearchDepth types.SearchDepth

	// MaxResults overrides the configured result count; values above
	// the hard cap (50) are clamped.
	MaxResults int

	// IncludeDomains and ExcludeDomains pass through to the provider
	// unchanged.
	IncludeDomains []string
	ExcludeDomains []string

	// TimeframeDays overrides the default 7-day recency window on
	// news-intent requests.
	TimeframeDays int

	// Location is attached to local-intent requests.
	Location string
}

// Client performs searches against the configured provider, or
// synthesizes responses offline when unconfigured. Each Search call
// constructs its own working set; a Client is safe for concurrent use.
type Client struct {
	cfg  types.ClientConfig
	gate types.QualityGateConfig
	http *http.Client
}

// New builds a Client from configuration, filling defaults for any
// zero-valued fields.
func New(cfg types.ClientConfig, gate types.QualityGateConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultAPIBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 10
	}
	if cfg.SearchDepth == "" {
		cfg.SearchDepth = types.DepthBasic
	}
	if gate == (types.QualityGateConfig{}) {
		gate = types.DefaultQualityGate()
	}
	return &Client{
		cfg:  cfg,
		gate: gate,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// IsConfigured reports whether a usable API key is present. Placeholder
// sentinel values are treated identically to absent keys.
func (c *Client) IsConfigured() bool {
	return !isPlaceholderKey(c.cfg.APIKey)
}

// fetched is the outcome of the fetch stage. Live provider calls and
// offline synthesis both produce this shape, so the downstream
// ranking/synthesis path is identical regardless of origin.
type fetched struct {
	origin    types.Origin
	answer    string
	sources   []types.SourceDocument
	followUps []string
}

// Search runs one complete query: validate, classify, fetch (live or
// offline), rank, synthesize, and assemble the response. The returned
// response is immutable; errors are always from the typed taxonomy.
func (c *Client) Search(ctx context.Context, query string, opts Options) (*types.SearchResponse, error) {
	start := time.Now()

	q := strings.TrimSpace(query)
	if q == "" {
		return nil, searcherr.InvalidQuery()
	}

	it := intent.Classify(q)

	var f fetched
	if !c.IsConfigured() {
		f = fetched{origin: types.OriginOffline, sources: offlineSources(q, it)}
	} else {
		pr, err := c.callProvider(ctx, c.buildRequest(q, it, opts))
		if err != nil {
			return nil, err
		}
		f = fetched{
			origin:    types.OriginLive,
			answer:    pr.Answer,
			sources:   toSourceDocuments(pr.Results),
			followUps: pr.FollowUpQuestions,
		}
	}

	sort.SliceStable(f.sources, func(i, j int) bool {
		return f.sources[i].RelevanceScore > f.sources[j].RelevanceScore
	})

	answer := c.composeAnswer(q, f, it)

	followUps := f.followUps
	if len(followUps) == 0 {
		followUps = synthesize.GenerateFollowUps(q, it, f.sources)
	}

	return &types.SearchResponse{
		Query:             q,
		Answer:            answer,
		Results:           f.sources,
		FollowUpQuestions: followUps,
		Metadata: types.ResponseMetadata{
			RequestID:        uuid.NewString(),
			Intent:           it.String(),
			Origin:           f.origin,
			TotalResults:     len(f.sources),
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
	}, nil
}

// composeAnswer applies the quality gate to the provider answer, or
// regenerates from the local pipeline when the gate rejects it (and
// always on the offline path, which carries no provider answer).
func (c *Client) composeAnswer(query string, f fetched, it intent.Intent) types.SynthesizedAnswer {
	switch c.decide(f.answer) {
	case gateAccept:
		return answerFromText(f.answer)
	case gateAugment:
		return answerFromText(c.augment(f.answer, f.sources))
	default:
		keyPoints := rank.ExtractKeyPoints(f.sources, it)
		return synthesize.Synthesize(query, keyPoints, f.sources, it)
	}
}

func answerFromText(text string) types.SynthesizedAnswer {
	text = strings.TrimSpace(text)
	return types.SynthesizedAnswer{
		Text:          text,
		CitationCount: synthesize.CountDistinctCitations(text),
		WordCount:     len(strings.Fields(text)),
	}
}

// isPlaceholderKey treats common sentinel values from config templates
// as absent credentials.
func isPlaceholderKey(key string) bool {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return true
	}
	switch key {
	case "changeme", "placeholder", "none", "xxx":
		return true
	}
	return strings.HasPrefix(key, "your-") || strings.Contains(key, "api-key-here")
}
