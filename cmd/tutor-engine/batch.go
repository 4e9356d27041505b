// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tutor-engine/internal/lesson"
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Build lessons for every article in a directory",
	Long: `Batch builds a lesson for each .txt, .md, .yaml and .yml file directly
under dir (default "articles") and saves them in the lesson store. Articles
whose text is unchanged since the stored lesson was built are skipped.

Concurrency defaults to batch.concurrency from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := "articles"
	if len(args) == 1 {
		dir = args[0]
	}

	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency <= 0 {
		concurrency = a.cfg.Batch.Concurrency
	}

	summary, err := lesson.ProcessAll(cmd.Context(), a.svc, dir, concurrency, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d article(s) failed", summary.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().Int("concurrency", 0, "articles processed at once (0 = use batch.concurrency)")

	rootCmd.AddCommand(batchCmd)
}
