// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

const maxHeadingLen = 60

var slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases title and collapses every run of characters outside
// [a-z0-9] into one hyphen.
func Slug(title string) string {
	return slugSeparator.ReplaceAllString(strings.ToLower(title), "-")
}

// isHeading reports whether a paragraph looks like a heading: shorter
// than 60 characters and not ending in a sentence terminator.
func isHeading(p string) bool {
	return runeLen(p) < maxHeadingLen && !strings.HasSuffix(p, ".") &&
		!strings.HasSuffix(p, "!") && !strings.HasSuffix(p, "?")
}

// Sections splits content into an outline. The first section is always
// "Introduction". A heading-shaped paragraph (never the first one) closes
// the open section and starts a new one; sections without paragraphs are
// dropped. When no heading is found the paragraphs are split in half into
// "Introduction" and "Historical Details"; a single paragraph leaves the
// Introduction section empty.
func (e *Extractor) Sections(content string) []types.Section {
	if blank(content) {
		return nil
	}
	out, ok := memo(e, opSections, cache.Key(opSections, content), cloneSections, func() []types.Section {
		return sectionize(paragraphs(content))
	})
	if !ok {
		return fallbackSections(content)
	}
	return out
}

func sectionize(paras []string) []types.Section {
	var sections []types.Section
	current := types.Section{ID: "introduction", Title: "Introduction"}
	headings := 0

	for i, p := range paras {
		if i > 0 && isHeading(p) {
			headings++
			if len(current.Content) > 0 {
				sections = append(sections, current)
			}
			current = types.Section{ID: Slug(p), Title: p}
			continue
		}
		current.Content = append(current.Content, p)
	}
	if len(current.Content) > 0 {
		sections = append(sections, current)
	}

	if headings == 0 || len(sections) == 0 {
		mid := len(paras) / 2
		return []types.Section{
			{ID: "introduction", Title: "Introduction", Content: paras[:mid:mid]},
			{ID: "details", Title: "Historical Details", Content: paras[mid:]},
		}
	}
	return sections
}

// fallbackSections puts every paragraph under one generic section.
func fallbackSections(content string) []types.Section {
	return []types.Section{{ID: "content", Title: "Content", Content: paragraphs(content)}}
}

func cloneSections(in []types.Section) []types.Section {
	if in == nil {
		return nil
	}
	out := make([]types.Section, len(in))
	for i, s := range in {
		s.Content = cloneSlice(s.Content)
		out[i] = s
	}
	return out
}
