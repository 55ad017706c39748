package synthesize

import (
	"strings"
	"testing"

	"github.com/ARMAND-cod-eng/answer-engine/internal/intent"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

func TestMainTopic(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"what is quantum computing", "quantum computing"},
		{"what is the capital of France?", "capital of France"},
		{"how to brew espresso at home", "brew espresso at home"},
		{"the best pizza in town tonight", "best pizza in town"},
		{"compare React and Vue for web apps", "compare React and Vue"},
		{"what", "what"},
		{"the", "the"},
		{"  why does ice float  ", "ice float"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := MainTopic(tt.query); got != tt.want {
				t.Errorf("MainTopic(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestGenerateFollowUpsTemplatesOnly(t *testing.T) {
	got := GenerateFollowUps("how to brew espresso", intent.HowTo, nil)

	if len(got) != 4 {
		t.Fatalf("expected the four intent templates with no sources, got %d: %v", len(got), got)
	}
	for _, q := range got {
		if !strings.Contains(q, "brew espresso") {
			t.Errorf("question %q should mention the main topic", q)
		}
		if !strings.HasSuffix(q, "?") {
			t.Errorf("question %q should end with a question mark", q)
		}
	}
}

func TestGenerateFollowUpsDistinctPerIntent(t *testing.T) {
	howto := GenerateFollowUps("learn chess", intent.HowTo, nil)
	news := GenerateFollowUps("learn chess", intent.News, nil)
	if howto[0] == news[0] {
		t.Errorf("intents should use different template sets, both start with %q", howto[0])
	}
}

func TestGenerateFollowUpsIncludesRelatedTopics(t *testing.T) {
	sources := []types.SourceDocument{
		{
			Title:   "residential installs",
			Content: "Tesla panels lead the market. Tesla also sells home batteries. Enphase makes the inverters.",
		},
	}

	got := GenerateFollowUps("solar panels for my roof", intent.General, sources)

	if len(got) != 6 {
		t.Fatalf("expected 4 templates + 2 related-topic questions, got %d: %v", len(got), got)
	}
	// Tesla appears twice, Enphase once, so Tesla ranks first.
	if want := "How does Tesla relate to solar panels for my?"; !strings.Contains(got[4], "Tesla") {
		t.Errorf("fifth question should reference the most frequent topic, got %q (want like %q)", got[4], want)
	}
	if !strings.Contains(got[5], "Enphase") {
		t.Errorf("sixth question should reference the second topic, got %q", got[5])
	}
}

func TestGenerateFollowUpsCapped(t *testing.T) {
	sources := []types.SourceDocument{
		{Content: "Alpine region. Bavaria region. Catalonia region. Dalmatia region. Estonia region."},
	}
	got := GenerateFollowUps("hiking trails", intent.General, sources)
	if len(got) > 6 {
		t.Errorf("follow-ups must be capped at 6, got %d", len(got))
	}
}

func TestRelatedTopicsTieBreakFirstSeen(t *testing.T) {
	sources := []types.SourceDocument{
		{Content: "Bavaria has trails. Alpine routes differ."},
	}
	got := relatedTopics(sources, "hiking")
	want := []string{"Bavaria", "Alpine"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("equal-frequency topics must keep first-seen order, got %v want %v", got, want)
	}
}

func TestRelatedTopicsExcludesMainTopic(t *testing.T) {
	sources := []types.SourceDocument{
		{Content: "Kubernetes is popular. Kubernetes clusters scale. Docker is related."},
	}
	got := relatedTopics(sources, "Kubernetes")
	for _, topic := range got {
		if strings.EqualFold(topic, "Kubernetes") {
			t.Errorf("related topics must exclude the main topic, got %v", got)
		}
	}
}
