// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ARMAND-cod-eng/answer-engine/internal/intent"
	"github.com/ARMAND-cod-eng/answer-engine/internal/synthesize"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

// mockDoc is one synthetic source template. The topic is substituted
// into title and content before the document is handed to the same
// ranking and synthesis pipeline the live path uses, so the response
// shape is identical either way.
type mockDoc struct {
	title   string
	slug    string
	content string
}

// mockCatalog holds per-intent synthetic source templates. Content is
// written to exercise the ranking vocabulary (features, comparisons,
// details) so offline answers come out fully structured.
var mockCatalog = map[intent.Intent][]mockDoc{
	intent.News: {
		{"%s: Latest Developments and Updates", "news-roundup",
			"Several organizations announced major milestones around %s this quarter. Industry analysts reported that adoption has accelerated faster than projected. The announcement unveiled new partnerships that are expected to reshape the landscape."},
		{"Breaking Analysis: What the %s News Means", "analysis",
			"The recent coverage of %s revealed significant shifts compared with earlier expectations. Experts confirmed that the changes offer practical advantages for early adopters. Observers noted the development launched ahead of schedule, which is unusual for the sector."},
		{"%s Coverage Roundup", "roundup",
			"Reports this week focused on how %s compares to previous efforts in the field. The feature set released so far supports a broad range of use cases. Officials confirmed further updates are planned."},
	},
	intent.HowTo: {
		{"A Complete Guide to %s", "complete-guide",
			"The first step toward %s is to understand the basics before investing in tools. Most guides recommend you start with a simple setup and configure it incrementally. Following a structured plan provides faster progress than improvising."},
		{"%s for Beginners: Step by Step", "beginners",
			"Beginners should create a minimal version first, while more experienced practitioners can install advanced options. The key advantage of this approach is that each step builds on the previous one. Careful preparation offers better results than rushing."},
		{"Common Mistakes When Learning %s", "mistakes",
			"A frequent mistake with %s is skipping the fundamentals, which makes later steps harder than they need to be. Checklists and templates provide useful guardrails. Reviewing progress weekly supports steady improvement."},
	},
	intent.Factual: {
		{"%s: Definition and Overview", "overview",
			"%s is generally defined by a core set of characteristics that distinguish it from related concepts. The primary features include well-documented behavior and broad applicability. Reference material provides consistent descriptions across sources."},
		{"Understanding %s", "understanding",
			"The mechanism behind %s is simpler than it first appears, while the implementation details reward closer study. It supports several common use cases and offers practical advantages in everyday settings. Specifically, the technical process consists of a few well-understood stages."},
		{"%s Explained", "explained",
			"Compared with alternatives, %s is notable for its balance of capability and simplicity. The main overview points are stable across references. Experts consider its defining features well established."},
	},
	intent.Local: {
		{"Top-Rated Options for %s", "top-rated",
			"Local listings for %s are rated on service, price, and convenience. The best options are located near major transit routes and keep extended hours. Reviews highlight which places are open late and which offer better value than competitors."},
		{"%s: A Local Guide", "local-guide",
			"Neighborhood guides for %s provide addresses, hours, and typical prices. Several highly rated venues are serving the area, while newer arrivals offer promotional pricing. Checking current listings provides the most reliable picture."},
		{"Comparing Nearby Choices for %s", "nearby",
			"When comparing choices for %s, proximity matters less than consistency of service. Established venues provide predictable quality, whereas newer spots can offer standout features. Local review aggregates are updated weekly."},
	},
	intent.Research: {
		{"Research Perspectives on %s", "research",
			"Published studies on %s found measurable effects across multiple settings. The evidence suggests the observed outcomes are significant rather than incidental. Meta-analyses provide a useful overview of the methodology differences."},
		{"%s: A Review of the Evidence", "evidence-review",
			"A systematic review of %s shows consistent findings, while individual studies vary in scope. The analysis concluded that measured effects hold under reasonable assumptions. Specifically, the implementation of controls differs between research groups."},
		{"What Studies Say About %s", "studies",
			"Recent work on %s compared competing approaches and found meaningful differences in outcomes. The strongest evidence supports the mainstream interpretation. Open questions remain about boundary conditions, and ongoing studies are measuring them."},
	},
	intent.General: {
		{"%s: An Overview", "overview",
			"%s offers a range of capabilities that make it popular across many contexts. The main features include flexibility and broad support, which is a practical advantage for newcomers. An overall view suggests it rewards gradual exploration."},
		{"Getting the Most Out of %s", "guide",
			"Users report that %s provides more value when approached with clear goals. Its key features are widely documented, while the advanced capabilities take longer to master. Comparison with alternatives shows respectable results on most dimensions."},
		{"Why %s Is Widely Known", "background",
			"%s is known for combining accessibility with depth. The important details are specifically documented in community resources. Compared to similar options, it remains a popular default choice."},
	},
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// offlineSources fabricates ranked source documents for the query.
// Content is a pure function of the query text, so offline responses
// are reproducible; only the publication timestamps track the clock.
func offlineSources(query string, it intent.Intent) []types.SourceDocument {
	topic := synthesize.MainTopic(query)
	if topic == "" {
		topic = strings.TrimSpace(query)
	}

	catalog, ok := mockCatalog[it]
	if !ok {
		catalog = mockCatalog[intent.General]
	}

	now := time.Now().UTC()
	docs := make([]types.SourceDocument, 0, len(catalog))
	for i, m := range catalog {
		docs = append(docs, types.SourceDocument{
			Title:          fmt.Sprintf(m.title, topic),
			URL:            fmt.Sprintf("https://example.com/%s/%s", topicSlug(topic), m.slug),
			Content:        strings.ReplaceAll(m.content, "%s", topic),
			PublishedAt:    now.AddDate(0, 0, -(i + 1)),
			RelevanceScore: 0.95 - 0.08*float64(i),
		})
	}
	return docs
}

func topicSlug(topic string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(topic), "-")
	return strings.Trim(slug, "-")
}
