// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lesson

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

// BatchSummary holds the outcome of a batch run.
type BatchSummary struct {
	Built  int
	Cached int
	Failed int
}

// Total returns the number of articles processed.
func (r BatchSummary) Total() int {
	return r.Built + r.Cached + r.Failed
}

// HasFailures reports whether any article failed to load.
func (r BatchSummary) HasFailures() bool {
	return r.Failed > 0
}

var articleExts = map[string]bool{".txt": true, ".md": true, ".yaml": true, ".yml": true}

// ArticleFiles returns the article files directly under dir, sorted.
func ArticleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading article directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !articleExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadArticle reads an article file. Plain text and Markdown files take
// their id from the file stem and their title from the stem with
// hyphens and underscores as spaces. YAML files decode into an Article;
// a missing id or title falls back to the same stem rules.
func LoadArticle(path string) (types.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Article{}, fmt.Errorf("reading article: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var a types.Article
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &a); err != nil {
			return types.Article{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	default:
		a.Content = string(data)
	}

	if a.ID == "" {
		a.ID = stem
	}
	if a.Title == "" {
		a.Title = TitleFromStem(stem)
	}
	return a, nil
}

// TitleFromStem turns a file stem like "roman-empire" into "roman empire".
func TitleFromStem(stem string) string {
	return strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ").Replace(stem))
}

// ProcessAll loads every article file in dir through svc with at most
// concurrency loads in flight, printing one status line per article to w.
// Individual failures are counted, not returned; the error reports an
// unreadable directory or a cancelled context.
func ProcessAll(ctx context.Context, svc *Service, dir string, concurrency int, w io.Writer) (BatchSummary, error) {
	paths, err := ArticleFiles(dir)
	if err != nil {
		return BatchSummary{}, err
	}
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu  sync.Mutex
		sum BatchSummary
	)
	report := func(status, name string, detail any) {
		mu.Lock()
		defer mu.Unlock()
		switch status {
		case "built":
			sum.Built++
		case "cached":
			sum.Cached++
		default:
			sum.Failed++
		}
		if detail != nil {
			fmt.Fprintf(w, "%-7s %s (%v)\n", status+":", name, detail)
			return
		}
		fmt.Fprintf(w, "%-7s %s\n", status+":", name)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, p := range paths {
		g.Go(func() error {
			name := filepath.Base(p)
			a, err := LoadArticle(p)
			if err != nil {
				report("failed", name, err)
				return nil
			}
			_, cached, err := svc.Load(gctx, a)
			switch {
			case err != nil:
				report("failed", name, err)
				return err
			case cached:
				report("cached", name, nil)
			default:
				report("built", name, nil)
			}
			return nil
		})
	}
	err = g.Wait()

	fmt.Fprintf(w, "\nBatch summary: %d built, %d cached, %d failed (total: %d)\n",
		sum.Built, sum.Cached, sum.Failed, sum.Total())
	if err != nil {
		return sum, fmt.Errorf("batch interrupted: %w", err)
	}
	return sum, nil
}
