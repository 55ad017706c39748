// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ARMAND-cod-eng/answer-engine/internal/batch"
	"github.com/ARMAND-cod-eng/answer-engine/internal/client"
	"github.com/ARMAND-cod-eng/answer-engine/internal/history"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a query and print the synthesized answer",
	Long: `Search classifies the query intent, fetches ranked results from the
configured provider, and composes a citation-annotated answer with follow-up
questions. Without provider credentials the response is synthesized offline.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("depth", "", "search depth: basic or advanced")
	searchCmd.Flags().Int("max-results", 0, "maximum number of results (capped at 50)")
	searchCmd.Flags().StringSlice("include-domains", nil, "restrict results to these domains")
	searchCmd.Flags().StringSlice("exclude-domains", nil, "exclude results from these domains")
	searchCmd.Flags().Bool("news", false, "request news-topic results")
	searchCmd.Flags().Int("days", 0, "recency window in days for news queries")
	searchCmd.Flags().String("location", "", "location hint for local queries")
	searchCmd.Flags().Bool("json", false, "output the response as JSON")
	searchCmd.Flags().String("save", "", "save the response to a YAML file")
	searchCmd.Flags().Bool("no-history", false, "do not record this search in the history store")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	depth, _ := cmd.Flags().GetString("depth")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	includeDomains, _ := cmd.Flags().GetStringSlice("include-domains")
	excludeDomains, _ := cmd.Flags().GetStringSlice("exclude-domains")
	includeNews, _ := cmd.Flags().GetBool("news")
	days, _ := cmd.Flags().GetInt("days")
	location, _ := cmd.Flags().GetString("location")
	asJSON, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	c := client.New(clientConfig(), gateConfig())

	resp, err := c.Search(context.Background(), query, client.Options{
		IncludeNews:    includeNews,
		SearchDepth:    types.SearchDepth(depth),
		MaxResults:     maxResults,
		IncludeDomains: includeDomains,
		ExcludeDomains: excludeDomains,
		TimeframeDays:  days,
		Location:       location,
	})
	if err != nil {
		return err
	}

	if asJSON {
		if err := client.FormatJSON(resp, os.Stdout); err != nil {
			return err
		}
	} else {
		client.FormatText(resp, os.Stdout)
	}

	if savePath != "" {
		if err := batch.WriteResponse(savePath, resp); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved response to %s\n", savePath)
	}

	if !noHistory {
		if err := recordHistory(resp); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
		}
	}
	return nil
}

// gateConfig reads quality gate overrides from config, falling back to
// the tuned defaults.
func gateConfig() types.QualityGateConfig {
	gate := types.DefaultQualityGate()
	if v := viper.GetInt("gate.min_accept_chars"); v > 0 {
		gate.MinAcceptChars = v
	}
	if v := viper.GetInt("gate.min_accept_citations"); v > 0 {
		gate.MinAcceptCitations = v
	}
	if v := viper.GetInt("gate.min_augment_chars"); v > 0 {
		gate.MinAugmentChars = v
	}
	return gate
}

func recordHistory(resp *types.SearchResponse) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(context.Background(), resp)
}
