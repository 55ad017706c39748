package client

import (
	"testing"

	"github.com/ARMAND-cod-eng/answer-engine/internal/intent"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

func TestBuildRequestDefaults(t *testing.T) {
	c := New(testConfig("http://unused"), types.QualityGateConfig{})
	req := c.buildRequest("hosted databases", intent.General, Options{})

	if req.SearchDepth != string(types.DepthBasic) {
		t.Errorf("depth = %q, want basic", req.SearchDepth)
	}
	if req.MaxResults != 10 {
		t.Errorf("max_results = %d, want 10", req.MaxResults)
	}
	if req.Topic != "" || req.Days != 0 {
		t.Errorf("general intent should not set a news topic, got topic=%q days=%d", req.Topic, req.Days)
	}
	if !req.IncludeAnswer || !req.IncludeRaw {
		t.Error("answer and raw content must always be requested")
	}
}

func TestBuildRequestClampsMaxResults(t *testing.T) {
	c := New(testConfig("http://unused"), types.QualityGateConfig{})
	tests := []struct {
		in   int
		want int
	}{
		{0, 10},
		{5, 5},
		{50, 50},
		{500, 50},
	}
	for _, tt := range tests {
		req := c.buildRequest("q", intent.General, Options{MaxResults: tt.in})
		if req.MaxResults != tt.want {
			t.Errorf("MaxResults %d -> %d, want %d", tt.in, req.MaxResults, tt.want)
		}
	}
}

func TestBuildRequestNewsWindow(t *testing.T) {
	cfg := testConfig("http://unused")
	c := New(cfg, types.QualityGateConfig{})

	req := c.buildRequest("latest ai developments", intent.News, Options{})
	if req.Topic != "news" {
		t.Errorf("topic = %q, want news", req.Topic)
	}
	if req.Days != 7 {
		t.Errorf("default recency window = %d days, want 7", req.Days)
	}

	req = c.buildRequest("latest ai developments", intent.News, Options{TimeframeDays: 3})
	if req.Days != 3 {
		t.Errorf("caller window = %d days, want 3", req.Days)
	}

	cfg.NewsDays = 14
	req = New(cfg, types.QualityGateConfig{}).buildRequest("latest ai developments", intent.News, Options{})
	if req.Days != 14 {
		t.Errorf("configured window = %d days, want 14", req.Days)
	}
}

func TestBuildRequestIncludeNewsFlag(t *testing.T) {
	c := New(testConfig("http://unused"), types.QualityGateConfig{})
	req := c.buildRequest("database comparison", intent.General, Options{IncludeNews: true})
	if req.Topic != "news" || req.Days != 7 {
		t.Errorf("IncludeNews should force the news topic, got topic=%q days=%d", req.Topic, req.Days)
	}
}

func TestBuildRequestLocation(t *testing.T) {
	c := New(testConfig("http://unused"), types.QualityGateConfig{})

	req := c.buildRequest("coffee shops near me", intent.Local, Options{Location: "Lisbon"})
	if req.Location != "Lisbon" {
		t.Errorf("location = %q, want Lisbon", req.Location)
	}

	req = c.buildRequest("coffee history", intent.Factual, Options{Location: "Lisbon"})
	if req.Location != "" {
		t.Errorf("non-local intent must not attach a location, got %q", req.Location)
	}
}

func TestBuildRequestDepthOverride(t *testing.T) {
	c := New(testConfig("http://unused"), types.QualityGateConfig{})

	req := c.buildRequest("q", intent.General, Options{SearchDepth: types.DepthAdvanced})
	if req.SearchDepth != string(types.DepthAdvanced) {
		t.Errorf("depth = %q, want advanced", req.SearchDepth)
	}

	req = c.buildRequest("q", intent.General, Options{SearchDepth: "bogus"})
	if req.SearchDepth != string(types.DepthBasic) {
		t.Errorf("unknown depth should fall back to the configured default, got %q", req.SearchDepth)
	}
}

func TestToSourceDocuments(t *testing.T) {
	docs := toSourceDocuments([]providerResult{
		{Title: "a", URL: "https://example.org/a", Content: "body", Snippet: "snip", Score: 0.7, PublishedDate: "2026-08-01"},
	})
	if len(docs) != 1 {
		t.Fatalf("got %d docs", len(docs))
	}
	d := docs[0]
	if d.Title != "a" || d.URL != "https://example.org/a" || d.RelevanceScore != 0.7 {
		t.Errorf("unexpected conversion: %+v", d)
	}
	if d.PublishedAt.IsZero() {
		t.Error("published date should parse")
	}
	if d.Text() != "body" {
		t.Errorf("Text() = %q, want content before snippet", d.Text())
	}
}
