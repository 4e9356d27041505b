// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

var (
	timePeriodPattern = regexp.MustCompile(`(?i)\b(\d{1,4}(?:st|nd|rd|th)?\s+century|\d{4}s|\d{3,4}\s*(?:BC|BCE|AD|CE)|\d{3,4}-\d{3,4}(?:\s*(?:BC|BCE|AD|CE))?)\b`)
	regionPattern     = regexp.MustCompile(`(?i)\bin\s+(North|South|East|West|Central)?\s*(America|Europe|Asia|Africa|Australia|Antarctica|the\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`)
	regionPrefix      = regexp.MustCompile(`(?i)^in\s+`)
	durationPattern   = regexp.MustCompile(`(?i)\blasted\s+for\s+(\d+(?:\.\d+)?\s+(?:years|decades|centuries))\b`)
	outcomePattern    = regexp.MustCompile(`(?i)\b(?:resulted\s+in|led\s+to|outcome\s+was|ended\s+with|concluded\s+with)\s+([^.]+)`)
)

// categories are tried in order when the article yields too few facts.
var categories = []string{
	"Historical Event", "Historical Period", "Ancient Civilization",
	"War", "Revolution", "Movement", "Dynasty", "Empire",
}

const minQuickFacts = 3

// QuickFacts fills labeled slots in a fixed order: Time Period, Region,
// Key Figure, Significant Date, Duration, Outcome. Each slot takes the
// first match in the whole article. When fewer than three are found a
// Category (first category noun contained in content or title) and a
// generic Significance are appended.
func (e *Extractor) QuickFacts(content, title string) []types.QuickFact {
	if blank(content) || blank(title) {
		return nil
	}
	out, _ := memo(e, opFacts, cache.Key(opFacts, content, title), cloneSlice, func() []types.QuickFact {
		return quickFacts(content, title)
	})
	return out
}

func quickFacts(content, title string) []types.QuickFact {
	var facts []types.QuickFact
	add := func(label types.FactLabel, value string) {
		facts = append(facts, types.QuickFact{Label: label, Value: value})
	}

	if m := timePeriodPattern.FindString(content); m != "" {
		add(types.FactTimePeriod, m)
	}
	if m := regionPattern.FindString(content); m != "" {
		add(types.FactRegion, regionPrefix.ReplaceAllString(m, ""))
	}
	if figures := keyFigures(paragraphs(content)); len(figures) > 0 {
		add(types.FactKeyFigure, figures[0].Name)
	}
	if m := datePattern.FindString(content); m != "" {
		add(types.FactSignificantDate, m)
	}
	if m := durationPattern.FindStringSubmatch(content); m != nil {
		add(types.FactDuration, m[1])
	}
	if m := outcomePattern.FindStringSubmatch(content); m != nil {
		add(types.FactOutcome, strings.TrimSpace(m[1]))
	}

	if len(facts) < minQuickFacts {
		lowerContent := strings.ToLower(content)
		lowerTitle := strings.ToLower(title)
		for _, c := range categories {
			lc := strings.ToLower(c)
			if strings.Contains(lowerContent, lc) || strings.Contains(lowerTitle, lc) {
				add(types.FactCategory, c)
				break
			}
		}
		add(types.FactSignificance, "Important topic in "+firstWord(strings.TrimSpace(title))+" history")
	}
	return facts
}
