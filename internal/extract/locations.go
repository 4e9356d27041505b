// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// gazetteer lists the place names and geographic nouns recognized as
// locations. Matching is case-insensitive on word boundaries.
var gazetteer = []string{
	"Africa", "America", "Asia", "Australia", "Europe",
	"North America", "South America", "Antarctica", "Middle East",
	"United States", "Russia", "China", "India", "Brazil", "Canada",
	"England", "France", "Germany", "Italy", "Spain", "Japan",
	"Egypt", "Greece", "Rome", "Athens", "Sparta", "Jerusalem",
	"London", "Paris", "Berlin", "Moscow", "Beijing", "Tokyo",
	"New York", "Washington", "Chicago", "Los Angeles", "San Francisco",
	"River", "Mountain", "Ocean", "Sea", "Lake", "Gulf", "Peninsula",
}

var locationPattern = regexp.MustCompile(`(?i)\b(?:` + alternation(gazetteer) + `)\b`)

// Locations finds gazetteer names with an enclosing sentence. The
// coordinates come from the Geocoder; with the default MockGeocoder
// they are random placeholders and every record is marked Synthetic.
// Results are deduplicated by name and capped at 8.
func (e *Extractor) Locations(content string) []types.Location {
	if blank(content) {
		return nil
	}
	out, _ := memo(e, opLocations, cache.Key(opLocations, content), cloneSlice, func() []types.Location {
		return e.locations(paragraphs(content))
	})
	return out
}

func (e *Extractor) locations(paras []string) []types.Location {
	var locs []types.Location
	seen := make(map[string]bool)

	for _, p := range paras {
		for _, m := range locationPattern.FindAllStringIndex(p, -1) {
			name := p[m[0]:m[1]]
			if seen[name] {
				continue
			}
			desc, ok := enclosingSentence(p, m[0], m[1])
			if !ok || runeLen(desc) <= minDescriptionLen {
				continue
			}
			seen[name] = true
			lat, lng, synthetic := e.geocoder.Geocode(name)
			locs = append(locs, types.Location{
				Name:        name,
				Description: desc,
				Lat:         lat,
				Lng:         lng,
				Synthetic:   synthetic,
			})
		}
	}
	return capped(locs, maxLocations)
}
