// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"slices"
	"strconv"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

const months = `January|February|March|April|May|June|July|August|September|October|November|December`

var (
	yearPattern = regexp.MustCompile(`(?i)\b(in|during|around|about|circa|by)?\s?(\d{3,4}(?:\s?(?:BC|BCE|AD|CE))?)\b`)
	datePattern = regexp.MustCompile(`(?i)\b(?:` + months + `)\s+\d{1,2},\s+\d{4}\b`)
)

// Timeline finds dated sentences. Each paragraph is scanned for years
// (optionally with a temporal preposition and era suffix) and then for
// full month-day-year dates. Results are in scan order, deduplicated by
// description and capped at 10.
func (e *Extractor) Timeline(content string) []types.TimelineEvent {
	if blank(content) {
		return nil
	}
	out, _ := memo(e, opTimeline, cache.Key(opTimeline, content), cloneSlice, func() []types.TimelineEvent {
		return timelineEvents(paragraphs(content))
	})
	return out
}

func timelineEvents(paras []string) []types.TimelineEvent {
	var events []types.TimelineEvent
	seen := make(map[string]bool)

	add := func(p string, loc []int, year, title string) {
		desc, ok := enclosingSentence(p, loc[0], loc[1])
		if !ok || runeLen(desc) <= minDescriptionLen || seen[desc] {
			return
		}
		seen[desc] = true
		events = append(events, types.TimelineEvent{Year: year, Title: title, Description: desc})
	}

	for _, p := range paras {
		for _, m := range yearPattern.FindAllStringSubmatchIndex(p, -1) {
			year := p[m[4]:m[5]]
			add(p, m, year, "Event in "+year)
		}
		for _, m := range datePattern.FindAllStringIndex(p, -1) {
			date := p[m[0]:m[1]]
			add(p, m, date, "Event on "+date)
		}
	}
	return capped(events, maxTimelineEvents)
}

var (
	yearDigits = regexp.MustCompile(`\d{3,4}`)
	anyDigits  = regexp.MustCompile(`\d+`)
	beforeEra  = regexp.MustCompile(`(?i)\bBCE?\b`)
)

// YearValue converts an event year to a sortable number. It uses the
// last three- or four-digit group (so full dates sort by their year),
// falling back to the first digit run, and negates BC and BCE years.
// ok is false when Year holds no digits.
func YearValue(year string) (int, bool) {
	digits := yearDigits.FindAllString(year, -1)
	var s string
	if len(digits) > 0 {
		s = digits[len(digits)-1]
	} else if s = anyDigits.FindString(year); s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if beforeEra.MatchString(year) {
		v = -v
	}
	return v, true
}

// SortChronologically returns a copy of events ordered by YearValue.
// Events without a readable year keep their relative order at the end.
func SortChronologically(events []types.TimelineEvent) []types.TimelineEvent {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b types.TimelineEvent) int {
		va, oka := YearValue(a.Year)
		vb, okb := YearValue(b.Year)
		switch {
		case oka && okb:
			return va - vb
		case oka:
			return -1
		case okb:
			return 1
		}
		return 0
	})
	return out
}
