// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank extracts candidate sentences from source documents,
// scores them for quality and intent relevance, and removes
// near-duplicates. The surviving key points are the atomic units the
// answer is built from.
package rank

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ARMAND-cod-eng/answer-engine/internal/intent"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

const (
	// MaxKeyPoints is the cap on extracted key points per call.
	MaxKeyPoints = 6

	// maxSourcesScanned bounds how many documents are mined, taken in
	// descending relevance order.
	maxSourcesScanned = 6

	// sentencesPerSource bounds how many scored sentences each document
	// may contribute before global deduplication.
	sentencesPerSource = 3

	minSentenceLen = 20
	maxSentenceLen = 300

	// dupThreshold is the Jaccard similarity above which a sentence is
	// rejected as a duplicate of an already selected one.
	dupThreshold = 0.8
)

// Scoring increments. The sentence score starts from the document's own
// relevance score; comparative content is considered universally
// valuable regardless of intent, so it earns the largest bonus.
const (
	intentHitBonus    = 0.15
	comparisonBonus   = 0.2
	capabilityBonus   = 0.1
	vagueShortPenalty = 0.1
	vagueShortLen     = 80
)

// intentKeywords holds the per-intent scoring vocabulary. Sentences
// containing these words are favored when the query carries the
// matching intent.
var intentKeywords = map[intent.Intent][]string{
	intent.News:     {"announced", "launched", "released", "reports", "revealed", "confirmed", "unveiled"},
	intent.HowTo:    {"step", "first", "install", "configure", "create", "start", "follow"},
	intent.Factual:  {"is", "are", "provides", "supports", "means", "defined", "consists"},
	intent.Local:    {"located", "open", "address", "hours", "rated", "serving"},
	intent.Research: {"found", "shows", "suggests", "evidence", "significant", "measured", "concluded"},
	intent.General:  {"offers", "popular", "known", "widely", "important"},
}

var (
	comparisonWords = []string{"vs", "versus", "compared", "comparison", "than", "while", "whereas", "unlike"}
	capabilityWords = []string{"feature", "features", "capability", "capabilities", "advantage", "functionality"}
	vagueWords      = []string{"things", "stuff", "various", "several", "some", "many"}
)

// boilerplatePatterns reject navigation chrome, ad markers, bare tag
// lists, and year-pipe metadata fragments before scoring.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(click|tap|read more|read the|see more|see all|subscribe|sign up|sign in|log in|learn more|follow us|share this)`),
	regexp.MustCompile(`(?i)\b(advertisement|sponsored|promoted|affiliate)\b`),
	regexp.MustCompile(`^(?:[\w&-]+,\s*){3,}[\w&-]+$`),
	regexp.MustCompile(`\b(?:19|20)\d{2}\s*\|`),
}

type candidate struct {
	text   string
	score  float64
	source int
}

// ExtractKeyPoints mines the top documents for up to MaxKeyPoints
// unique, quality-ranked sentences. The output is deterministic for
// identical input: all sorts are stable and nothing is randomized.
// An empty or entirely filtered source list yields an empty slice; the
// synthesizer handles that via its fallback templates.
func ExtractKeyPoints(sources []types.SourceDocument, it intent.Intent) []string {
	ranked := make([]types.SourceDocument, len(sources))
	copy(ranked, sources)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})
	if len(ranked) > maxSourcesScanned {
		ranked = ranked[:maxSourcesScanned]
	}

	keywords := intentKeywords[it]
	if keywords == nil {
		keywords = intentKeywords[intent.General]
	}

	var all []candidate
	for i, src := range ranked {
		text := src.Title
		if body := src.Text(); body != "" {
			text = text + ". " + body
		}

		var scored []candidate
		for _, sentence := range SplitSentences(text) {
			if !acceptable(sentence) {
				continue
			}
			scored = append(scored, candidate{
				text:   sentence,
				score:  scoreSentence(sentence, src.RelevanceScore, keywords),
				source: i,
			})
		}

		sort.SliceStable(scored, func(a, b int) bool { return scored[a].score > scored[b].score })
		if len(scored) > sentencesPerSource {
			scored = scored[:sentencesPerSource]
		}
		all = append(all, scored...)
	}

	deduped := deduplicate(all)

	sort.SliceStable(deduped, func(a, b int) bool {
		return qualityScore(deduped[a].text) > qualityScore(deduped[b].text)
	})
	if len(deduped) > MaxKeyPoints {
		deduped = deduped[:MaxKeyPoints]
	}

	points := make([]string, len(deduped))
	for i, c := range deduped {
		points[i] = c.text
	}
	return points
}

// SplitSentences breaks text into trimmed sentence candidates on
// terminal punctuation boundaries.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var sentences []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// acceptable applies the length bounds and boilerplate filters.
func acceptable(sentence string) bool {
	if len(sentence) < minSentenceLen || len(sentence) > maxSentenceLen {
		return false
	}
	for _, re := range boilerplatePatterns {
		if re.MatchString(sentence) {
			return false
		}
	}
	return true
}

// scoreSentence scores one sentence starting from the source's own
// relevance score.
func scoreSentence(sentence string, base float64, keywords []string) float64 {
	tokens := wordSet(sentence)

	score := base
	for _, kw := range keywords {
		if tokens[kw] {
			score += intentHitBonus
		}
	}
	if hasAny(tokens, comparisonWords) {
		score += comparisonBonus
	}
	if hasAny(tokens, capabilityWords) {
		score += capabilityBonus
	}
	if len(sentence) < vagueShortLen && hasAny(tokens, vagueWords) {
		score -= vagueShortPenalty
	}
	return score
}

// qualityScore is the second-pass ranking heuristic: comparative
// vocabulary is worth most, capability vocabulary and moderate length
// (60-200 characters) add smaller rewards.
func qualityScore(sentence string) float64 {
	tokens := wordSet(sentence)
	var q float64
	if hasAny(tokens, comparisonWords) {
		q += 2
	}
	if hasAny(tokens, capabilityWords) {
		q += 1
	}
	if len(sentence) >= 60 && len(sentence) <= 200 {
		q += 1
	}
	return q
}

// deduplicate drops exact-normalized repeats first, then anything whose
// Jaccard similarity with an already kept sentence exceeds dupThreshold.
func deduplicate(cands []candidate) []candidate {
	seen := make(map[string]bool)
	var kept []candidate

	for _, c := range cands {
		norm := Normalize(c.text)
		if seen[norm] {
			continue
		}

		dup := false
		for _, k := range kept {
			if Jaccard(c.text, k.text) > dupThreshold {
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		seen[norm] = true
		kept = append(kept, c)
	}
	return kept
}

// Normalize lowercases, collapses whitespace, and strips trailing
// punctuation for exact-match comparison.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimRight(s, ".,;:!? ")
	return strings.Join(strings.Fields(s), " ")
}

// Jaccard computes set similarity over lower-cased word tokens.
func Jaccard(a, b string) float64 {
	sa, sb := wordSet(a), wordSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 1.0
	}
	if len(sa) == 0 || len(sb) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range sa {
		if sb[w] {
			intersection++
		}
	}
	union := len(sa) + len(sb) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,;:!?()[]\"'")
		if w != "" {
			set[w] = true
		}
	}
	return set
}

func hasAny(tokens map[string]bool, words []string) bool {
	for _, w := range words {
		if tokens[w] {
			return true
		}
	}
	return false
}
