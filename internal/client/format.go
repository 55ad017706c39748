// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

// FormatText writes a human-readable rendering of the response to w.
func FormatText(resp *types.SearchResponse, w io.Writer) {
	fmt.Fprintln(w, resp.Answer.Text)

	if len(resp.Results) > 0 {
		fmt.Fprintf(w, "\nSources:\n")
		for i, r := range resp.Results {
			title := r.Title
			if len(title) > 70 {
				title = title[:67] + "..."
			}
			fmt.Fprintf(w, "  [%d] %s\n      %s\n", i+1, title, r.URL)
		}
	}

	if len(resp.FollowUpQuestions) > 0 {
		fmt.Fprintf(w, "\nFollow-up questions:\n")
		for _, q := range resp.FollowUpQuestions {
			fmt.Fprintf(w, "  - %s\n", q)
		}
	}

	fmt.Fprintf(w, "\n%d results, %d citations, %d words (%s, %d ms)\n",
		resp.Metadata.TotalResults,
		resp.Answer.CitationCount,
		resp.Answer.WordCount,
		resp.Metadata.Origin,
		resp.Metadata.ProcessingTimeMs)

	if resp.Metadata.Origin == types.OriginOffline {
		fmt.Fprintln(w, strings.TrimSpace(`
Note: no provider credentials configured; this response was synthesized offline.`))
	}
}

// FormatJSON writes the response as indented JSON to w.
func FormatJSON(resp *types.SearchResponse, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
