// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ARMAND-cod-eng/answer-engine/internal/intent"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

const (
	maxFollowUps     = 6
	maxTopicWords    = 4
	maxRelatedTopics = 2
)

// leadingInterrogative strips a leading question word plus auxiliary
// ("what is", "how do", "can i", ...) from a query.
var leadingInterrogative = regexp.MustCompile(
	`(?i)^(what|how|why|when|where|who|which|whose|is|are|was|were|do|does|did|can|could|should|would|will)\s+(is|are|was|were|do|does|did|to|i|you|the|a|an)?\s*`)

// capitalizedPhrase matches named-entity-like capitalized word runs
// mined from source documents as related topics.
var capitalizedPhrase = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`)

// followUpTemplates holds four question templates per intent; the main
// topic is substituted into each.
var followUpTemplates = map[intent.Intent][]string{
	intent.News: {
		"What are the latest developments in %s?",
		"Who are the key players in %s?",
		"What is the wider impact of %s?",
		"What is expected to happen next with %s?",
	},
	intent.HowTo: {
		"What tools do I need for %s?",
		"What are common mistakes when learning %s?",
		"How long does it take to get good at %s?",
		"What are advanced techniques for %s?",
	},
	intent.Factual: {
		"How does %s work?",
		"What is the history of %s?",
		"What are examples of %s?",
		"Why is %s important?",
	},
	intent.Local: {
		"What are the best-rated options for %s?",
		"What are typical prices for %s nearby?",
		"When are places offering %s open?",
		"Are there alternatives to %s in the area?",
	},
	intent.Research: {
		"What does recent research say about %s?",
		"What are the limitations of studies on %s?",
		"How is %s measured or evaluated?",
		"What are the open questions in %s research?",
	},
	intent.General: {
		"What are the benefits of %s?",
		"What are alternatives to %s?",
		"How do I get started with %s?",
		"What do experts say about %s?",
	},
}

// GenerateFollowUps derives up to six next-question suggestions from
// the query's main topic, the intent's template set, and secondary
// topics mined from the source documents. Output is deterministic for
// identical input: topic-frequency ties break by first-seen order.
func GenerateFollowUps(query string, it intent.Intent, sources []types.SourceDocument) []string {
	topic := MainTopic(query)

	templates, ok := followUpTemplates[it]
	if !ok {
		templates = followUpTemplates[intent.General]
	}

	var questions []string
	for _, t := range templates {
		questions = append(questions, fmt.Sprintf(t, topic))
	}

	for _, related := range relatedTopics(sources, topic) {
		questions = append(questions, fmt.Sprintf("How does %s relate to %s?", related, topic))
	}

	if len(questions) > maxFollowUps {
		questions = questions[:maxFollowUps]
	}
	return questions
}

// MainTopic extracts the subject of a query by stripping the leading
// interrogative pattern and articles, keeping at most four words.
func MainTopic(query string) string {
	q := strings.TrimSpace(query)
	q = strings.TrimRight(q, "?!. ")
	q = leadingInterrogative.ReplaceAllString(q, "")

	words := strings.Fields(q)
	for len(words) > 0 && isArticle(words[0]) {
		words = words[1:]
	}
	if len(words) == 0 {
		words = strings.Fields(strings.TrimRight(strings.TrimSpace(query), "?!. "))
	}
	if len(words) > maxTopicWords {
		words = words[:maxTopicWords]
	}
	return strings.Join(words, " ")
}

func isArticle(w string) bool {
	switch strings.ToLower(w) {
	case "the", "a", "an":
		return true
	}
	return false
}

// relatedTopics frequency-counts capitalized phrases across all
// document titles and bodies and returns the top two, excluding the
// main topic itself.
func relatedTopics(sources []types.SourceDocument, mainTopic string) []string {
	type topicCount struct {
		phrase string
		count  int
		seen   int
	}

	counts := make(map[string]*topicCount)
	order := 0
	mainLower := strings.ToLower(mainTopic)

	for _, src := range sources {
		text := src.Title + " " + src.Text()
		for _, m := range capitalizedPhrase.FindAllString(text, -1) {
			if len(m) < 4 || len(m) > 30 {
				continue
			}
			if strings.ToLower(m) == mainLower {
				continue
			}
			tc, ok := counts[m]
			if !ok {
				tc = &topicCount{phrase: m, seen: order}
				order++
				counts[m] = tc
			}
			tc.count++
		}
	}

	ranked := make([]*topicCount, 0, len(counts))
	for _, tc := range counts {
		ranked = append(ranked, tc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].seen < ranked[j].seen
	})

	if len(ranked) > maxRelatedTopics {
		ranked = ranked[:maxRelatedTopics]
	}
	topics := make([]string, len(ranked))
	for i, tc := range ranked {
		topics[i] = tc.phrase
	}
	return topics
}
