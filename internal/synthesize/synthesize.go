// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synthesize composes extracted key points into a coherent,
// citation-annotated prose answer and derives contextual follow-up
// questions. Both operations are total: empty input produces a fixed
// fallback, never an error.
package synthesize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ARMAND-cod-eng/answer-engine/internal/intent"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

// Bucket categorization vocabulary. Uncategorized points default to the
// summary bucket.
var (
	featureCategoryWords    = []string{"feature", "capability", "offers", "includes", "provides", "supports", "enables"}
	comparisonCategoryWords = []string{"vs", "versus", "compared", "better", "worse", "superior", "alternative", "than", "while"}
	summaryCategoryWords    = []string{"overview", "introduction", "general", "overall", "main", "primary", "key"}
	detailCategoryWords     = []string{"specifically", "technical", "implementation", "mechanism", "process", "method"}
)

// framings holds the one-sentence endings appended to the opening
// paragraph, keyed by intent.
var framings = map[intent.Intent]string{
	intent.News:     "This reflects the most recent coverage available.",
	intent.HowTo:    "The points below break the process down further.",
	intent.Factual:  "The sources are consistent on these core facts.",
	intent.Local:    "Availability varies by area, so check current listings.",
	intent.Research: "The findings below summarize the published analysis.",
	intent.General:  "Here is what the sources highlight.",
}

// leadingNonAlpha strips list markers and stray punctuation from the
// front of an extracted sentence.
var leadingNonAlpha = regexp.MustCompile(`^[^A-Za-z]+`)

// citationMarker matches a literal "[n]" citation token.
var citationMarker = regexp.MustCompile(`\[(\d+)\]`)

type buckets struct {
	summary    []string
	features   []string
	comparison []string
	details    []string
}

// Synthesize composes key points into a multi-paragraph answer with
// in-text numbered citations. Citation numbers increase monotonically
// across the whole answer in emission order (summary point first, then
// features, comparison, details); they never reset per section. When
// keyPoints is empty, an intent-keyed fallback template is returned.
func Synthesize(query string, keyPoints []string, sources []types.SourceDocument, it intent.Intent) types.SynthesizedAnswer {
	if len(keyPoints) == 0 {
		return fallback(query, sources, it)
	}

	b := categorize(keyPoints)

	citation := 1
	opening := cite(longest(b.summary), citation)
	citation++

	framing, ok := framings[it]
	if !ok {
		framing = framings[intent.General]
	}
	paragraphs := []string{opening + " " + framing}

	sections := []struct {
		title  string
		points []string
	}{
		{"Key Features:", b.features},
		{"Comparisons:", b.comparison},
		{"Additional Details:", b.details},
	}
	for _, sec := range sections {
		if len(sec.points) == 0 {
			continue
		}
		var sentences []string
		for _, p := range sec.points {
			sentences = append(sentences, cite(p, citation))
			citation++
		}
		paragraphs = append(paragraphs, sec.title+"\n"+strings.Join(sentences, " "))
	}

	text := strings.Join(paragraphs, "\n\n")
	return types.SynthesizedAnswer{
		Text:          text,
		CitationCount: citation - 1,
		WordCount:     len(strings.Fields(text)),
	}
}

// categorize assigns each key point to one semantic bucket. Feature and
// comparison vocabulary is checked before the summary vocabulary so that
// a point mentioning both lands in the more specific bucket. If no point
// lands in summary, the first point seeds it so the opening paragraph
// always has material.
func categorize(keyPoints []string) buckets {
	var b buckets
	for _, p := range keyPoints {
		lower := strings.ToLower(p)
		switch {
		case containsAnyWord(lower, comparisonCategoryWords):
			b.comparison = append(b.comparison, p)
		case containsAnyWord(lower, featureCategoryWords):
			b.features = append(b.features, p)
		case containsAnyWord(lower, detailCategoryWords):
			b.details = append(b.details, p)
		case containsAnyWord(lower, summaryCategoryWords):
			b.summary = append(b.summary, p)
		default:
			b.summary = append(b.summary, p)
		}
	}
	if len(b.summary) == 0 {
		b.summary = []string{keyPoints[0]}
	}
	return b
}

// cite cleans a key point and appends the citation marker before the
// final punctuation.
func cite(point string, n int) string {
	s := leadingNonAlpha.ReplaceAllString(point, "")
	s = strings.Join(strings.Fields(s), " ")
	marker := fmt.Sprintf(" [%d]", n)

	if len(s) > 0 {
		last := s[len(s)-1]
		if last == '.' || last == '!' || last == '?' {
			return s[:len(s)-1] + marker + string(last)
		}
	}
	return s + marker + "."
}

func longest(points []string) string {
	best := ""
	for _, p := range points {
		if len(p) > len(best) {
			best = p
		}
	}
	return best
}

// fallbackTemplates holds the terminal fallback paragraphs used when no
// key points survive extraction. Each is split into sentences at
// emission time so the first few can carry placeholder citations when
// sources exist.
var fallbackTemplates = map[intent.Intent]string{
	intent.News: "Coverage of %s is still developing and the most useful reports are the most recent ones. " +
		"Established outlets have begun publishing summaries of the situation. " +
		"Checking back over the next few days should surface more complete reporting.",
	intent.HowTo: "A practical way to approach %s is to start with the fundamentals and build up through hands-on practice. " +
		"Begin with the most widely recommended beginner resources and follow a structured guide end to end. " +
		"Small, repeated projects are the fastest way to consolidate each step.",
	intent.Factual: "The available material on %s covers the essential definitions and context. " +
		"Reference sources describe its key characteristics and how it is commonly understood. " +
		"More specialized references can fill in the finer details.",
	intent.Local: "Results for %s depend heavily on your exact location. " +
		"Local directories and recent reviews are the most reliable way to compare nearby options. " +
		"Opening hours and availability change often, so verify before visiting.",
	intent.Research: "Published work on %s spans several methodologies and perspectives. " +
		"Survey articles are the best entry point before reading individual studies. " +
		"Recent publications tend to refine rather than overturn the earlier findings.",
	intent.General: "Here is a general overview of %s based on commonly available information. " +
		"The topic has several dimensions worth exploring in more depth. " +
		"Refining the query will surface more specific material.",
}

// fallback returns the fixed intent-keyed template paragraph. Up to
// three leading sentences carry placeholder citations referencing the
// first sources; with no sources the text is citation-free. This path
// never errors.
func fallback(query string, sources []types.SourceDocument, it intent.Intent) types.SynthesizedAnswer {
	tmpl, ok := fallbackTemplates[it]
	if !ok {
		tmpl = fallbackTemplates[intent.General]
	}
	text := fmt.Sprintf(tmpl, strings.TrimSpace(query))

	placeholders := len(sources)
	if placeholders > 3 {
		placeholders = 3
	}

	citations := 0
	if placeholders > 0 {
		sentences := strings.SplitAfter(text, ". ")
		for i := 0; i < len(sentences) && citations < placeholders; i++ {
			s := strings.TrimRight(sentences[i], " ")
			if !strings.HasSuffix(s, ".") {
				continue
			}
			citations++
			sentences[i] = fmt.Sprintf("%s [%d]. ", strings.TrimSuffix(s, "."), citations)
		}
		text = strings.TrimRight(strings.Join(sentences, ""), " ")
	}

	return types.SynthesizedAnswer{
		Text:          text,
		CitationCount: citations,
		WordCount:     len(strings.Fields(text)),
	}
}

// CountDistinctCitations returns the number of distinct "[n]" markers in text.
func CountDistinctCitations(text string) int {
	seen := make(map[string]bool)
	for _, m := range citationMarker.FindAllStringSubmatch(text, -1) {
		seen[m[1]] = true
	}
	return len(seen)
}

// containsAnyWord reports whether any of the words appears as a whole
// token in the lower-cased sentence.
func containsAnyWord(lower string, words []string) bool {
	tokens := make(map[string]bool)
	for _, t := range strings.Fields(lower) {
		tokens[strings.Trim(t, ".,;:!?()[]\"'")] = true
	}
	for _, w := range words {
		if tokens[w] {
			return true
		}
	}
	return false
}
