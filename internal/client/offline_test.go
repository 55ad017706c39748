package client

import (
	"strings"
	"testing"
	"time"

	"github.com/ARMAND-cod-eng/answer-engine/internal/intent"
)

func TestOfflineSources(t *testing.T) {
	docs := offlineSources("what is quantum computing", intent.Factual)

	if len(docs) != 3 {
		t.Fatalf("expected 3 synthetic sources, got %d", len(docs))
	}
	for i, d := range docs {
		if !strings.Contains(d.Title, "quantum computing") && !strings.Contains(d.Content, "quantum computing") {
			t.Errorf("doc %d should mention the topic: title=%q", i, d.Title)
		}
		if !strings.HasPrefix(d.URL, "https://example.com/quantum-computing/") {
			t.Errorf("doc %d URL = %q", i, d.URL)
		}
		if strings.Contains(d.Title, "%s") || strings.Contains(d.Content, "%s") {
			t.Errorf("doc %d has an unsubstituted placeholder", i)
		}
		if d.PublishedAt.IsZero() || d.PublishedAt.After(time.Now()) {
			t.Errorf("doc %d PublishedAt = %v", i, d.PublishedAt)
		}
	}
	for i := 1; i < len(docs); i++ {
		if docs[i].RelevanceScore >= docs[i-1].RelevanceScore {
			t.Errorf("scores must strictly decrease, got %v then %v",
				docs[i-1].RelevanceScore, docs[i].RelevanceScore)
		}
	}
}

func TestOfflineSourcesDeterministicContent(t *testing.T) {
	a := offlineSources("learn chess", intent.HowTo)
	b := offlineSources("learn chess", intent.HowTo)
	for i := range a {
		if a[i].Content != b[i].Content || a[i].Title != b[i].Title || a[i].URL != b[i].URL {
			t.Errorf("doc %d differs between identical invocations", i)
		}
	}
}

func TestOfflineSourcesPerIntent(t *testing.T) {
	factual := offlineSources("solar power", intent.Factual)
	news := offlineSources("solar power", intent.News)
	if factual[0].Title == news[0].Title {
		t.Error("different intents should draw from different catalogs")
	}
}

func TestTopicSlug(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"quantum computing", "quantum-computing"},
		{"C++ basics", "c-basics"},
		{"  spaced  out  ", "spaced-out"},
	}
	for _, tt := range tests {
		if got := topicSlug(tt.topic); got != tt.want {
			t.Errorf("topicSlug(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestParsePublishedDate(t *testing.T) {
	tests := []struct {
		in       string
		wantZero bool
	}{
		{"2026-08-01T10:30:00Z", false},
		{"2026-08-01", false},
		{"Mon, 02 Jan 2006 15:04:05 MST", false},
		{"", true},
		{"not a date", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parsePublishedDate(tt.in)
			if got.IsZero() != tt.wantZero {
				t.Errorf("parsePublishedDate(%q) = %v, wantZero=%v", tt.in, got, tt.wantZero)
			}
		})
	}
}
