// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ARMAND-cod-eng/answer-engine/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect previously recorded searches",
	Long: `History manages the local SQLite log of completed searches. Use
subcommands to list recent searches, full-text search past answers, show a
single entry, or prune old records.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		store, err := history.NewStore(historyConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(context.Background(), limit)
		if err != nil {
			return err
		}
		printEntries(entries)
		return nil
	},
}

var historySearchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Full-text search recorded queries and answers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		store, err := history.NewStore(historyConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.SearchText(context.Background(), strings.Join(args, " "), limit)
		if err != nil {
			return err
		}
		printEntries(entries)
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the full answer of one recorded search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(historyConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		e, err := store.Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Query:   %s\n", e.Query)
		fmt.Printf("Intent:  %s   Origin: %s   Recorded: %s\n",
			e.Intent, e.Origin, e.CreatedAt.Format(time.RFC3339))
		fmt.Printf("Results: %d   Citations: %d   Words: %d   Took: %d ms\n\n",
			e.TotalResults, e.CitationCount, e.WordCount, e.ProcessingTimeMs)
		fmt.Println(e.Answer)
		return nil
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete records older than the given number of days",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if days <= 0 {
			return fmt.Errorf("--days must be positive")
		}

		store, err := history.NewStore(historyConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Prune(context.Background(), time.Duration(days)*24*time.Hour)
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d record(s) older than %d day(s).\n", removed, days)
		return nil
	},
}

func printEntries(entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Println("No history entries.")
		return
	}

	fmt.Printf("%-36s  %-40s  %-8s  %-7s  %s\n", "ID", "Query", "Intent", "Origin", "Recorded")
	fmt.Println(strings.Repeat("-", 110))
	for _, e := range entries {
		query := e.Query
		if len(query) > 40 {
			query = query[:37] + "..."
		}
		fmt.Printf("%-36s  %-40s  %-8s  %-7s  %s\n",
			e.ID, query, e.Intent, e.Origin, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum entries to list")
	historySearchCmd.Flags().Int("limit", 0, "maximum entries to list")
	historyPruneCmd.Flags().Int("days", 30, "delete records older than this many days")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
