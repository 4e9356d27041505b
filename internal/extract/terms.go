// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

var termPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s[A-Z][a-z]+){0,3})\s(?:is|was|were|are|refers to|defined as)\b`)

// termStopwords extends nameStopwords with "It".
var termStopwords = map[string]bool{
	"The": true, "This": true, "That": true, "These": true,
	"Those": true, "There": true, "Their": true, "They": true, "It": true,
}

// KeyTerms finds one to four capitalized words followed by a
// definitional verb (is, was, were, are, refers to, defined as) and uses
// the enclosing sentence as the definition. Results are deduplicated by
// term and not capped.
func (e *Extractor) KeyTerms(content string) []types.KeyTerm {
	if blank(content) {
		return nil
	}
	out, _ := memo(e, opTerms, cache.Key(opTerms, content), cloneSlice, func() []types.KeyTerm {
		return keyTerms(paragraphs(content))
	})
	return out
}

func keyTerms(paras []string) []types.KeyTerm {
	var terms []types.KeyTerm
	seen := make(map[string]bool)

	for _, p := range paras {
		for _, m := range termPattern.FindAllStringSubmatchIndex(p, -1) {
			term := p[m[2]:m[3]]
			if termStopwords[firstWord(term)] || seen[term] {
				continue
			}
			def, ok := enclosingSentence(p, m[0], m[1])
			if !ok || runeLen(def) <= minDescriptionLen {
				continue
			}
			seen[term] = true
			terms = append(terms, types.KeyTerm{Term: term, Definition: def})
		}
	}
	return terms
}
