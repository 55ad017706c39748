// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ARMAND-cod-eng/answer-engine/internal/batch"
	"github.com/ARMAND-cod-eng/answer-engine/internal/client"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Run a YAML file of queries and save each response",
	Long: `Batch reads a YAML file listing queries with optional per-query options,
runs each through the search client sequentially, and writes one response
YAML file per query into the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("out", "responses", "output directory for response files")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")

	f, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	c := client.New(clientConfig(), gateConfig())

	failed, err := batch.Run(context.Background(), c, f, outDir, os.Stdout)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d queries failed", failed, len(f.Queries))
	}
	return nil
}
