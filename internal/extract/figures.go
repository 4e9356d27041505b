// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// honorifics may precede a name. They are matched but not kept.
var honorifics = []string{
	"King", "Queen", "Emperor", "Empress", "Prince", "Princess", "Duke", "Duchess",
	"Lord", "Lady", "Sir", "Dame", "President", "Prime Minister", "Chancellor",
	"General", "Admiral", "Captain", "Colonel", "Professor", "Dr.", "Saint",
}

var namePattern = regexp.MustCompile(`\b(` + alternation(honorifics) + `)?\s?([A-Z][a-z]+(?:\s[A-Z][a-z]+){1,3})\b`)

// nameStopwords are capitalized determiners and pronouns that start
// many false name matches.
var nameStopwords = map[string]bool{
	"The": true, "This": true, "That": true, "These": true,
	"Those": true, "There": true, "Their": true, "They": true,
}

// KeyFigures finds runs of two to four capitalized words, optionally
// after an honorific, whose enclosing sentence mentions them. Results are
// deduplicated by name and capped at 5.
func (e *Extractor) KeyFigures(content string) []types.KeyFigure {
	if blank(content) {
		return nil
	}
	out, _ := memo(e, opFigures, cache.Key(opFigures, content), cloneSlice, func() []types.KeyFigure {
		return keyFigures(paragraphs(content))
	})
	return out
}

func keyFigures(paras []string) []types.KeyFigure {
	var figures []types.KeyFigure
	seen := make(map[string]bool)

	for _, p := range paras {
		for _, m := range namePattern.FindAllStringSubmatchIndex(p, -1) {
			name := p[m[4]:m[5]]
			if nameStopwords[firstWord(name)] || seen[name] {
				continue
			}
			desc, ok := enclosingSentence(p, m[0], m[1])
			if !ok || runeLen(desc) <= minDescriptionLen || !strings.Contains(desc, name) {
				continue
			}
			seen[name] = true
			figures = append(figures, types.KeyFigure{Name: name, Description: desc})
		}
	}
	return capped(figures, maxKeyFigures)
}

// alternation joins literal words into a regexp alternation.
func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
