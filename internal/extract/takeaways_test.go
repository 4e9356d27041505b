// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeaways(t *testing.T) {
	important199 := "An important " + strings.Repeat("a", 185) + "."
	important200 := "An important " + strings.Repeat("a", 186) + "."
	require.Len(t, important199, 199)
	require.Len(t, important200, 200)

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "backfills first sentence",
			content: apolloText,
			want:    []string{"In 1969, Apollo 11 landed on the Moon.", "Neil Armstrong was the first person to walk on it."},
		},
		{
			name:    "lower bound is inclusive",
			content: "It was the most vital day ok. It was the most important day.",
			want:    []string{"It was the most important day."},
		},
		{
			name:    "upper bound is exclusive",
			content: "Short opener here. " + important200 + " Closing words are here.",
			want:    nil,
		},
		{
			name:    "just under the upper bound",
			content: "Short opener here. " + important199 + " Closing words are here.",
			want:    []string{important199},
		},
		{
			name:    "deduplicated",
			content: "The war changed everything in the land. The war changed everything in the land.",
			want:    []string{"The war changed everything in the land."},
		},
		{
			name:    "backfills last sentence of last paragraph",
			content: "Tiny start.\nNothing notable happens in this sentence at all. The river kept flowing past the old mill wheel.",
			want:    []string{"The river kept flowing past the old mill wheel."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestExtractor(t)
			assert.Equal(t, tt.want, e.Takeaways(tt.content))
		})
	}
}

func TestTakeawaysCap(t *testing.T) {
	content := strings.Join([]string{
		"The first harvest festival was held in the valley.",
		"Trade routes were important to the growth of the town.",
		"The flood caused damage to most of the lower farms.",
		"Eventually the river was diverted around the old walls.",
		"The largest market opened beside the eastern gate.",
		"Scholars consider the charter a fundamental document.",
		"As a result the guilds gained power over the council.",
	}, " ")
	e, _ := newTestExtractor(t)

	got := e.Takeaways(content)
	require.Len(t, got, 5)
	assert.Equal(t, "The first harvest festival was held in the valley.", got[0])
	assert.Equal(t, "The largest market opened beside the eastern gate.", got[4])
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"One. Two! Three? Four", []string{"One.", "Two!", "Three?", "Four"}},
		{"Version 2.0 shipped.  Then more.", []string{"Version 2.0 shipped.", "Then more."}},
		{"No terminator", []string{"No terminator"}},
		{"Ends here.", []string{"Ends here."}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, splitSentences(tt.in))
		})
	}
}
