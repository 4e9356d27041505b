// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tutor-engine/internal/lesson"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process [file|-]",
	Short: "Build a lesson from one article",
	Long: `Process reads one article and prints the resulting lesson. The argument
is a .txt, .md, .yaml or .yml file, or "-" (the default) to read plain text
from stdin.

The lesson is saved in the lesson store unless --no-store is set. When the
store already holds a lesson built from the same text, that lesson is
printed instead of rebuilding it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	id, _ := cmd.Flags().GetString("id")
	format, _ := cmd.Flags().GetString("format")
	noStore, _ := cmd.Flags().GetBool("no-store")

	if format != "yaml" && format != "json" {
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	src := "-"
	if len(args) == 1 {
		src = args[0]
	}
	article, err := readArticle(cmd.InOrStdin(), src)
	if err != nil {
		return err
	}
	article = applyArticleFlags(article, title, id, cmd.ErrOrStderr())

	a, err := newApp(!noStore)
	if err != nil {
		return err
	}
	defer a.close()

	l, cached, err := a.svc.Load(cmd.Context(), article)
	if err != nil {
		return err
	}
	if cached {
		fmt.Fprintf(os.Stderr, "reused stored lesson for %s\n", l.TopicID)
	}
	return writeLesson(cmd.OutOrStdout(), l, format)
}

// untitled is the title given to articles that arrive without one.
const untitled = "Untitled"

// applyArticleFlags overrides the article title and id from flags. An
// article still lacking a title is keyed by its content hash and titled
// "Untitled", with a warning on w, since quiz, quick facts and related
// topics are built from the title.
func applyArticleFlags(a types.Article, title, id string, w io.Writer) types.Article {
	if title != "" {
		a.Title = title
	}
	if id != "" {
		a.ID = id
	}
	if strings.TrimSpace(a.Title) == "" {
		if strings.TrimSpace(a.ID) == "" {
			a.ID = lesson.ContentHash(a.Content)
		}
		a.Title = untitled
		fmt.Fprintf(w, "warning: article has no title, using %q; pass --title for a better quiz and facts\n", untitled)
	}
	return a
}

// readArticle loads src as an article file, or reads plain text from r
// when src is "-".
func readArticle(r io.Reader, src string) (types.Article, error) {
	if src != "-" {
		return lesson.LoadArticle(src)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return types.Article{}, fmt.Errorf("reading stdin: %w", err)
	}
	return types.Article{Content: string(data)}, nil
}

func writeLesson(w io.Writer, l *types.Lesson, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshaling lesson: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func init() {
	processCmd.Flags().String("title", "", "article title (default: derived from the file name)")
	processCmd.Flags().String("id", "", "topic id (default: file stem, or a hash of the title)")
	processCmd.Flags().String("format", "yaml", "output format: yaml or json")
	processCmd.Flags().Bool("no-store", false, "build without reading or writing the lesson store")

	rootCmd.AddCommand(processCmd)
}
