// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intent classifies a raw query string into one of six fixed
// intents and can rewrite the query to bias the downstream provider.
// Classification is a pure function of the query text; nothing is
// cached between calls.
package intent

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose category of a query. It drives both
// the ranking keyword tables and the answer templates.
type Intent string

const (
	News     Intent = "news"
	HowTo    Intent = "howto"
	Factual  Intent = "factual"
	Local    Intent = "local"
	Research Intent = "research"
	General  Intent = "general"
)

// String returns the intent tag.
func (i Intent) String() string { return string(i) }

// Indicator tables are tested in fixed priority order: news first, then
// how-to, local, research, and the factual interrogative pattern last.
// Queries can match several tables, so the order is significant.
var (
	newsIndicators = []string{
		"latest", "news", "breaking", "today", "current events",
		"recent", "update", "announcement", "headlines", "this week",
	}

	howtoIndicators = []string{
		"how to", "how do i", "how can i", "tutorial", "guide",
		"step by step", "instructions", "learn to", "setup", "set up",
	}

	localIndicators = []string{
		"near me", "nearby", "closest", "local", "in my area",
		"around here", "directions to", "open now",
	}

	researchIndicators = []string{
		"research", "study", "studies", "analysis", "compare",
		"comparison", "versus", " vs ", "evidence", "pros and cons",
	}
)

// factualPattern matches a leading interrogative word.
var factualPattern = regexp.MustCompile(`^(who|what|when|where|why|which|whose)\b`)

// Classify maps a query to an intent. It is deterministic and total:
// it always returns one of the six intents and never errors.
func Classify(query string) Intent {
	q := strings.ToLower(strings.TrimSpace(query))

	if containsAny(q, newsIndicators) {
		return News
	}
	if containsAny(q, howtoIndicators) {
		return HowTo
	}
	if containsAny(q, localIndicators) {
		return Local
	}
	if containsAny(q, researchIndicators) {
		return Research
	}
	if factualPattern.MatchString(q) {
		return Factual
	}
	return General
}

// Optimize rewrites the query to better match the detected intent. It
// is a pure string transform: news queries gain a "latest" prefix,
// how-to queries gain a "how to" prefix, research queries gain a
// "research study analysis" suffix. All other intents pass through.
func Optimize(query string, it Intent) string {
	q := strings.TrimSpace(query)
	lower := strings.ToLower(q)

	switch it {
	case News:
		if !strings.HasPrefix(lower, "latest") {
			return "latest " + q
		}
	case HowTo:
		if !strings.HasPrefix(lower, "how to") {
			return "how to " + q
		}
	case Research:
		return q + " research study analysis"
	}
	return q
}

func containsAny(q string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(q, ind) {
			return true
		}
	}
	return false
}
