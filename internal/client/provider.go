// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/ARMAND-cod-eng/answer-engine/internal/intent"
	"github.com/ARMAND-cod-eng/answer-engine/internal/searcherr"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

// DefaultAPIBase is the provider search endpoint used when the
// configuration does not override it.
const DefaultAPIBase = "https://api.tavily.com/search"

// maxErrorBodyBytes bounds how much of an error response body is read
// into the typed error message.
const maxErrorBodyBytes = 512

// providerRequest is the JSON body of the outbound search call.
type providerRequest struct {
	Query           string   `json:"query"`
	SearchDepth     string   `json:"search_depth"`
	IncludeAnswer   bool     `json:"include_answer"`
	IncludeImages   bool     `json:"include_images"`
	IncludeRaw      bool     `json:"include_raw_content"`
	MaxResults      int      `json:"max_results"`
	IncludeNews     bool     `json:"include_news"`
	Topic           string   `json:"topic,omitempty"`
	Days            int      `json:"days,omitempty"`
	Location        string   `json:"location,omitempty"`
	IncludeDomains  []string `json:"include_domains,omitempty"`
	ExcludeDomains  []string `json:"exclude_domains,omitempty"`
}

type providerResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Snippet       string  `json:"snippet"`
	Score         float64 `json:"score"`
	PublishedDate string  `json:"published_date"`
}

type providerResponse struct {
	Answer            string           `json:"answer"`
	Results           []providerResult `json:"results"`
	Images            []string         `json:"images"`
	FollowUpQuestions []string         `json:"follow_up_questions"`
	ResponseTime      float64          `json:"response_time"`
}

// buildRequest shapes the provider request from the optimized query,
// the detected intent, and caller options. News intent requests a
// recency window (7 days unless overridden); local intent attaches the
// caller's location; the result count is clamped to the hard cap.
func (c *Client) buildRequest(query string, it intent.Intent, opts Options) providerRequest {
	req := providerRequest{
		Query:          intent.Optimize(query, it),
		SearchDepth:    string(c.cfg.SearchDepth),
		IncludeAnswer:  true,
		IncludeImages:  true,
		IncludeRaw:     true,
		MaxResults:     c.cfg.MaxResults,
		IncludeNews:    opts.IncludeNews,
		IncludeDomains: opts.IncludeDomains,
		ExcludeDomains: opts.ExcludeDomains,
	}

	if opts.SearchDepth == types.DepthBasic || opts.SearchDepth == types.DepthAdvanced {
		req.SearchDepth = string(opts.SearchDepth)
	}
	if req.SearchDepth == "" {
		req.SearchDepth = string(types.DepthBasic)
	}

	if opts.MaxResults > 0 {
		req.MaxResults = opts.MaxResults
	}
	if req.MaxResults <= 0 {
		req.MaxResults = 10
	}
	if req.MaxResults > types.MaxResultsCap {
		req.MaxResults = types.MaxResultsCap
	}

	if it == intent.News || opts.IncludeNews {
		req.Topic = "news"
		req.Days = c.cfg.NewsDays
		if req.Days <= 0 {
			req.Days = 7
		}
		if opts.TimeframeDays > 0 {
			req.Days = opts.TimeframeDays
		}
	}

	if it == intent.Local && opts.Location != "" {
		req.Location = opts.Location
	}

	return req
}

// callProvider performs the single timeout-bounded POST and maps every
// failure to a typed error. There is no retry at this layer; a 429
// surfaces RATE_LIMIT_EXCEEDED with the provider's backoff hint and
// backing off is the caller's job.
func (c *Client) callProvider(ctx context.Context, preq providerRequest) (*providerResponse, error) {
	payload, err := json.Marshal(preq)
	if err != nil {
		return nil, searcherr.Wrap(fmt.Errorf("encoding request: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, searcherr.Wrap(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, searcherr.Timeout(err)
		}
		return nil, searcherr.Network(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, searcherr.FromStatus(resp.StatusCode, string(body), resp.Header.Get("Retry-After"))
	}

	var pr providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, searcherr.Wrap(fmt.Errorf("parsing provider response: %w", err))
	}
	return &pr, nil
}

// isTimeout distinguishes deadline expiry from other transport failures
// so the local timeout maps to TIMEOUT rather than NETWORK_ERROR.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// toSourceDocuments converts provider results to the shared document type.
func toSourceDocuments(results []providerResult) []types.SourceDocument {
	docs := make([]types.SourceDocument, 0, len(results))
	for _, r := range results {
		doc := types.SourceDocument{
			Title:          r.Title,
			URL:            r.URL,
			Content:        r.Content,
			Snippet:        r.Snippet,
			RelevanceScore: r.Score,
		}
		doc.PublishedAt = parsePublishedDate(r.PublishedDate)
		docs = append(docs, doc)
	}
	return docs
}

// parsePublishedDate accepts the date formats the provider is known to
// emit and returns the zero time for anything else.
func parsePublishedDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", time.RFC1123} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
