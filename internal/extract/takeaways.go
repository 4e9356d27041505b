// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/pdiddy/tutor-engine/internal/cache"
)

// salience patterns mark a sentence as worth remembering: importance
// adjectives, causal verbs, superlatives and concluding adverbs.
var salience = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:significant|important|crucial|critical|essential|key|major|primary|fundamental)\b`),
	regexp.MustCompile(`(?i)\b(?:led to|resulted in|caused|influenced|affected|changed|transformed|revolutionized)\b`),
	regexp.MustCompile(`(?i)\b(?:first|last|only|largest|smallest|greatest|most|best|worst)\b`),
	regexp.MustCompile(`(?i)\b(?:ultimately|eventually|finally|in conclusion|as a result|consequently|therefore)\b`),
}

const (
	minTakeawayLen = 30
	maxTakeawayLen = 200
	minTakeaways   = 3
)

// Takeaways selects salient sentences between 30 and 199 characters,
// deduplicated, in article order. When fewer than three are found the
// first sentence of the article is prepended and the last sentence
// appended, each only if new and longer than 30 characters. At most five
// are returned.
func (e *Extractor) Takeaways(content string) []string {
	if blank(content) {
		return nil
	}
	out, _ := memo(e, opTakeaways, cache.Key(opTakeaways, content), cloneSlice, func() []string {
		return takeaways(paragraphs(content))
	})
	return out
}

func takeaways(paras []string) []string {
	var out []string
	for _, p := range paras {
		for _, s := range splitSentences(p) {
			n := runeLen(s)
			if n < minTakeawayLen || n >= maxTakeawayLen || !salient(s) || slices.Contains(out, s) {
				continue
			}
			out = append(out, s)
		}
	}

	if len(out) < minTakeaways && len(paras) > 0 {
		first, _, _ := strings.Cut(paras[0], ".")
		first += "."
		if !slices.Contains(out, first) && runeLen(first) > minTakeawayLen {
			out = slices.Insert(out, 0, first)
		}

		last := splitSentences(paras[len(paras)-1])
		if len(last) > 0 {
			s := last[len(last)-1]
			if !slices.Contains(out, s) && runeLen(s) > minTakeawayLen {
				out = append(out, s)
			}
		}
	}
	return capped(out, maxTakeaways)
}

func salient(s string) bool {
	for _, re := range salience {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// splitSentences splits p after each '.', '!' or '?' that is followed by
// whitespace. The terminator stays with its sentence and the whitespace
// is dropped.
func splitSentences(p string) []string {
	var out []string
	start := 0
	runes := []rune(p)
	for i := 0; i < len(runes)-1; i++ {
		if !isTerminator(runes[i]) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		out = append(out, string(runes[start:i+1]))
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
