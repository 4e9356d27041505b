// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lesson

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTitleFromStem(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"roman-empire", "roman empire"},
		{"apollo_11", "apollo 11"},
		{"plain", "plain"},
		{"-edge-", "edge"},
	}
	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromStem(tt.stem))
		})
	}
}

func TestLoadArticle(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    types.Article
	}{
		{
			name:    "plain text",
			file:    "roman-empire.txt",
			content: "Rome ruled.",
			want:    types.Article{ID: "roman-empire", Title: "roman empire", Content: "Rome ruled."},
		},
		{
			name:    "markdown",
			file:    "moon_landing.md",
			content: "Apollo 11 landed.",
			want:    types.Article{ID: "moon_landing", Title: "moon landing", Content: "Apollo 11 landed."},
		},
		{
			name:    "yaml full",
			file:    "rome.yaml",
			content: "id: rome-42\ntitle: Ancient Rome\ncontent: |\n  Rome ruled.\n",
			want:    types.Article{ID: "rome-42", Title: "Ancient Rome", Content: "Rome ruled.\n"},
		},
		{
			name:    "yaml defaults",
			file:    "fall-of-rome.yml",
			content: "content: Rome fell.\n",
			want:    types.Article{ID: "fall-of-rome", Title: "fall of rome", Content: "Rome fell."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			got, err := LoadArticle(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadArticleErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadArticle(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "content: [unclosed\n")
	_, err = LoadArticle(bad)
	assert.Error(t, err)
}

func TestArticleFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.md", "c.yaml", "d.yml", "notes.pdf", "e.TXT"} {
		writeFile(t, dir, name, "x")
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	got, err := ArticleFiles(dir)
	require.NoError(t, err)

	var names []string
	for _, p := range got {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"a.md", "b.txt", "c.yaml", "d.yml", "e.TXT"}, names)
}

func TestArticleFilesMissingDir(t *testing.T) {
	_, err := ArticleFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestProcessAll(t *testing.T) {
	stubClock(t)
	dir := t.TempDir()
	writeFile(t, dir, "rome.txt", romeArticle)
	writeFile(t, dir, "apollo.md", "In 1969, Apollo 11 landed on the Moon. Neil Armstrong was the first person to walk on it.")
	writeFile(t, dir, "broken.yaml", "content: [unclosed\n")
	writeFile(t, dir, "ignored.pdf", "not an article")

	store := newMemStore()
	svc := NewService(newTestBuilder(), store, nil)
	ctx := context.Background()

	var out bytes.Buffer
	sum, err := ProcessAll(ctx, svc, dir, 2, &out)
	require.NoError(t, err)
	assert.Equal(t, BatchSummary{Built: 2, Failed: 1}, sum)
	assert.Equal(t, 3, sum.Total())
	assert.True(t, sum.HasFailures())
	assert.Contains(t, out.String(), "built:  rome.txt")
	assert.Contains(t, out.String(), "failed: broken.yaml")
	assert.Contains(t, out.String(), "Batch summary: 2 built, 0 cached, 1 failed (total: 3)")
	assert.Contains(t, store.lessons, "rome")
	assert.Contains(t, store.lessons, "apollo")

	out.Reset()
	sum, err = ProcessAll(ctx, svc, dir, 0, &out)
	require.NoError(t, err)
	assert.Equal(t, BatchSummary{Cached: 2, Failed: 1}, sum)
	assert.Equal(t, 2, strings.Count(out.String(), "cached:"))
}

func TestProcessAllEmptyDir(t *testing.T) {
	svc := NewService(newTestBuilder(), nil, nil)

	var out bytes.Buffer
	sum, err := ProcessAll(context.Background(), svc, t.TempDir(), 4, &out)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Total())
	assert.False(t, sum.HasFailures())
}

func TestProcessAllCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rome.txt", romeArticle)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sum, err := ProcessAll(ctx, NewService(newTestBuilder(), nil, nil), dir, 1, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, sum.Failed)
}

func TestProcessAllMissingDir(t *testing.T) {
	_, err := ProcessAll(context.Background(), NewService(newTestBuilder(), nil, nil),
		filepath.Join(t.TempDir(), "nope"), 1, &bytes.Buffer{})
	assert.Error(t, err)
}
