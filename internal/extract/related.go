// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

const (
	tokenPunctuation   = `.,;:!?()[]{}'"`
	minTopicWordLen    = 4
	maxTopicDescLen    = 150
	truncatedDescRunes = 147
)

var (
	capitalizedWord = regexp.MustCompile(`^[A-Z][a-z]+$`)
	phraseWord      = regexp.MustCompile(`^[A-Z]?[a-z]+$`)
	numericWord     = regexp.MustCompile(`^\d+$`)
	sentenceBreak   = regexp.MustCompile(`[.!?]+`)
)

// RelatedTopics suggests neighbouring subjects. Capitalized words of at
// least four letters start candidate phrases of one, two or three words;
// the second and third words may be lowercase. Each candidate is
// described by the first sentence containing it, truncated to 150
// characters. Phrases equal to title, ignoring case, are skipped, and so
// is any phrase starting with a word equal to title. IDs come from the
// IDGenerator and are mock identifiers by default. At most six topics are
// returned.
func (e *Extractor) RelatedTopics(content, title string) []types.RelatedTopic {
	if blank(content) || blank(title) {
		return nil
	}
	out, _ := memo(e, opRelated, cache.Key(opRelated, content, title), cloneSlice, func() []types.RelatedTopic {
		return e.relatedTopics(content, title)
	})
	return out
}

func (e *Extractor) relatedTopics(content, title string) []types.RelatedTopic {
	candidates := topicCandidates(content, title)

	var sentences []string
	for _, s := range sentenceBreak.Split(content, -1) {
		if !blank(s) {
			sentences = append(sentences, s)
		}
	}

	var topics []types.RelatedTopic
	for _, phrase := range candidates {
		for _, s := range sentences {
			if !strings.Contains(s, phrase) {
				continue
			}
			topics = append(topics, types.RelatedTopic{
				ID:          e.ids.ID(phrase),
				Title:       phrase,
				Description: truncateDescription(strings.TrimSpace(s)),
			})
			break
		}
		if len(topics) == maxRelatedTopics {
			break
		}
	}
	return topics
}

// topicCandidates returns unique candidate phrases in discovery order.
func topicCandidates(content, title string) []string {
	words := strings.Fields(content)
	var out []string
	seen := make(map[string]bool)
	add := func(phrase string) {
		if seen[phrase] || strings.EqualFold(phrase, title) {
			return
		}
		seen[phrase] = true
		out = append(out, phrase)
	}

	for i, raw := range words {
		word := strings.Trim(raw, tokenPunctuation)
		if runeLen(word) < minTopicWordLen || numericWord.MatchString(word) || !capitalizedWord.MatchString(word) ||
			strings.EqualFold(word, title) {
			continue
		}
		add(word)

		if i >= len(words)-2 {
			continue
		}
		next := strings.Trim(words[i+1], tokenPunctuation)
		if !phraseWord.MatchString(next) {
			continue
		}
		add(word + " " + next)

		if i >= len(words)-3 {
			continue
		}
		third := strings.Trim(words[i+2], tokenPunctuation)
		if phraseWord.MatchString(third) {
			add(word + " " + next + " " + third)
		}
	}
	return out
}

func truncateDescription(s string) string {
	r := []rune(s)
	if len(r) > maxTopicDescLen {
		return string(r[:truncatedDescRunes]) + "..."
	}
	return s
}
