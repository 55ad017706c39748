// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ARMAND-cod-eng/answer-engine/internal/rank"
	"github.com/ARMAND-cod-eng/answer-engine/internal/synthesize"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

// gateDecision is the three-way outcome of the provider-answer quality
// gate. Upstream answers vary wildly in quality: a naive accept-or-reject
// policy either discards good answers or propagates bad ones.
type gateDecision int

const (
	gateRegenerate gateDecision = iota
	gateAugment
	gateAccept
)

// Factual-marker patterns. An answer worth keeping verbatim reads like
// sourced biography or reporting: it carries year patterns, named
// entities, and stative or biographical verbs.
var (
	yearPattern   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	entityPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
	verbPattern   = regexp.MustCompile(`\b(was|is|were|are|served|known|founded|born|became)\b`)
)

// genericPhrases match known template phrasing the provider emits when
// it has nothing substantive to say.
var genericPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^i (couldn'?t|could not|was unable to) find`),
	regexp.MustCompile(`(?i)^(here (are|is) (some|the|a few) (results|information|links))`),
	regexp.MustCompile(`(?i)^based on (the|my|available) search`),
	regexp.MustCompile(`(?i)^(sorry|unfortunately)[, ]`),
	regexp.MustCompile(`(?i)no (relevant|specific) (information|results) (was|were) found`),
}

// decide classifies a provider answer: accept it verbatim, lightly
// augment it, or fully regenerate it from the local pipeline.
func (c *Client) decide(answer string) gateDecision {
	answer = strings.TrimSpace(answer)
	if answer == "" || isGeneric(answer) {
		return gateRegenerate
	}
	if len(answer) >= c.gate.MinAcceptChars &&
		synthesize.CountDistinctCitations(answer) >= c.gate.MinAcceptCitations &&
		hasFactualMarkers(answer) {
		return gateAccept
	}
	if len(answer) >= c.gate.MinAugmentChars {
		return gateAugment
	}
	return gateRegenerate
}

func isGeneric(answer string) bool {
	for _, re := range genericPhrases {
		if re.MatchString(answer) {
			return true
		}
	}
	return false
}

// hasFactualMarkers requires either a year pattern or an entity plus a
// biographical verb.
func hasFactualMarkers(answer string) bool {
	if yearPattern.MatchString(answer) {
		return true
	}
	return entityPattern.MatchString(answer) && verbPattern.MatchString(answer)
}

// augment extends a short but substantive provider answer with up to
// AugmentMaxSentences sentences mined from the top result documents.
// Mined sentences carry citation markers resolving to their document's
// 1-based position.
func (c *Client) augment(answer string, docs []types.SourceDocument) string {
	existing := rank.SplitSentences(answer)

	limit := c.gate.AugmentSourceDocs
	if limit > len(docs) {
		limit = len(docs)
	}

	added := 0
	out := strings.TrimSpace(answer)
	for i := 0; i < limit && added < c.gate.AugmentMaxSentences; i++ {
		for _, sentence := range rank.SplitSentences(docs[i].Text()) {
			if added >= c.gate.AugmentMaxSentences {
				break
			}
			if len(sentence) < 40 || len(sentence) > 250 {
				continue
			}
			if similarToAny(sentence, existing) {
				continue
			}
			out = fmt.Sprintf("%s %s [%d].", out, sentence, i+1)
			existing = append(existing, sentence)
			added++
		}
	}
	return out
}

func similarToAny(sentence string, existing []string) bool {
	for _, e := range existing {
		if rank.Jaccard(sentence, e) > 0.8 {
			return true
		}
	}
	return false
}
