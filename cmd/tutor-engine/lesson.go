// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Inspect the lesson store (list, show, search, delete, export)",
	Long: `Lesson inspects the local lesson store. Lessons are added by the process
and batch commands.`,
}

// --- list subcommand ---

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored lessons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		renderSummaries(cmd.OutOrStdout(), rows)
		return nil
	},
}

// --- show subcommand ---

var lessonShowCmd = &cobra.Command{
	Use:   "show [topic-id]",
	Short: "Print a stored lesson",
	Long: `Show prints a text summary of a stored lesson. Use --format yaml or json
for the full record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		width, _ := cmd.Flags().GetInt("width")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		l, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		switch format {
		case "text", "":
			renderLesson(cmd.OutOrStdout(), l, max(width, 40))
			return nil
		case "yaml", "json":
			return writeLesson(cmd.OutOrStdout(), l, format)
		default:
			return fmt.Errorf("unsupported format %q: use text, yaml or json", format)
		}
	},
}

// --- search subcommand ---

var lessonSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over lesson titles and article text",
	Long: `Search runs an SQLite FTS5 query over stored lesson titles and article
text. The query uses FTS5 syntax, so phrases ("roman empire") and prefix
terms (emp*) are supported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.Search(cmd.Context(), strings.Join(args, " "), limit)
		if err != nil {
			return err
		}
		renderSummaries(cmd.OutOrStdout(), rows)
		return nil
	},
}

// --- delete subcommand ---

var lessonDeleteCmd = &cobra.Command{
	Use:   "delete [topic-id]",
	Short: "Remove a stored lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted: %s\n", args[0])
		return nil
	},
}

// --- export subcommand ---

var lessonExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every stored lesson to YAML or JSON",
	Long: `Export writes all stored lessons to export.yaml or export.json in the
store directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var path string
		switch format {
		case "yaml", "":
			path, err = store.ExportYAML(cmd.Context())
		case "json":
			path, err = store.ExportJSON(cmd.Context())
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

func init() {
	lessonShowCmd.Flags().String("format", "text", "output format: text, yaml or json")
	lessonShowCmd.Flags().Int("width", 80, "wrap text output at this many columns")
	lessonSearchCmd.Flags().Int("limit", 20, "maximum number of results")
	lessonExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	lessonCmd.AddCommand(lessonListCmd)
	lessonCmd.AddCommand(lessonShowCmd)
	lessonCmd.AddCommand(lessonSearchCmd)
	lessonCmd.AddCommand(lessonDeleteCmd)
	lessonCmd.AddCommand(lessonExportCmd)

	rootCmd.AddCommand(lessonCmd)
}
