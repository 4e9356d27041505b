// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/internal/logging"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// --- test helpers ---

const apolloText = "In 1969, Apollo 11 landed on the Moon. Neil Armstrong was the first person to walk on it."

const romeText = `Rome grew from a small town into a great power over many centuries of conflict. The city adopted its first written code of laws in 1450 after long debates. Its people were proud.
Julius Caesar crossed the Rubicon with his legions and marched on the city of Rome. The senate could not stop him and the republic soon came to an end.
Legacy
The fall of Rome was a major turning point in the history of the Mediterranean Sea region.`

func newTestExtractor(t *testing.T, opts ...Option) (*Extractor, *cache.LRU) {
	t.Helper()
	lru, err := cache.NewLRU(64)
	require.NoError(t, err)
	base := []Option{
		WithCache(lru),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	}
	return New(append(base, opts...)...), lru
}

type panicGeocoder struct{}

func (panicGeocoder) Geocode(string) (float64, float64, bool) { panic("geocoder down") }

type panicIDs struct{}

func (panicIDs) ID(string) string { panic("no ids") }

// --- boundary and idempotence ---

func TestBlankInputReturnsEmpty(t *testing.T) {
	e, _ := newTestExtractor(t)

	for _, content := range []string{"", "   ", "\n\n\t\n"} {
		assert.Empty(t, e.Sections(content))
		assert.Empty(t, e.Timeline(content))
		assert.Empty(t, e.KeyFigures(content))
		assert.Empty(t, e.Locations(content))
		assert.Empty(t, e.KeyTerms(content))
		assert.Empty(t, e.Takeaways(content))
		assert.Empty(t, e.QuickFacts(content, "Rome"))
		assert.Empty(t, e.Quiz(content, "Rome"))
		assert.Empty(t, e.RelatedTopics(content, "Rome"))
	}
}

func TestBlankTitleReturnsEmpty(t *testing.T) {
	e, _ := newTestExtractor(t)

	assert.Empty(t, e.QuickFacts(romeText, ""))
	assert.Empty(t, e.Quiz(romeText, " "))
	assert.Empty(t, e.RelatedTopics(romeText, ""))
}

func TestIdempotentColdAndWarm(t *testing.T) {
	e, lru := newTestExtractor(t)

	assert.Equal(t, e.Sections(romeText), e.Sections(romeText))
	assert.Equal(t, e.Timeline(romeText), e.Timeline(romeText))
	assert.Equal(t, e.KeyFigures(romeText), e.KeyFigures(romeText))
	assert.Equal(t, e.Locations(romeText), e.Locations(romeText))
	assert.Equal(t, e.KeyTerms(romeText), e.KeyTerms(romeText))
	assert.Equal(t, e.Takeaways(romeText), e.Takeaways(romeText))
	assert.Equal(t, e.QuickFacts(romeText, "Rome"), e.QuickFacts(romeText, "Rome"))
	assert.Equal(t, e.Quiz(romeText, "Rome"), e.Quiz(romeText, "Rome"))
	assert.Equal(t, e.RelatedTopics(romeText, "Rome"), e.RelatedTopics(romeText, "Rome"))

	assert.Equal(t, uint64(9), lru.Stats().Hits)
}

func TestCachedResultsAreCopies(t *testing.T) {
	e, _ := newTestExtractor(t)

	first := e.Sections(romeText)
	require.NotEmpty(t, first)
	first[0].Title = "mutated"
	first[0].Content[0] = "mutated"

	second := e.Sections(romeText)
	assert.Equal(t, "Introduction", second[0].Title)
	assert.NotEqual(t, "mutated", second[0].Content[0])

	quiz := e.Quiz(romeText, "Rome")
	require.NotEmpty(t, quiz)
	quiz[0].Options[0] = "mutated"
	assert.NotEqual(t, "mutated", e.Quiz(romeText, "Rome")[0].Options[0])
}

func TestSharedPrefixDoesNotCollide(t *testing.T) {
	prefix := "This opening sentence is long enough to fill the first hundred characters of the whole article body text."
	require.GreaterOrEqual(t, len(prefix), 100)

	a := prefix + " In 1066 the Normans invaded England."
	b := prefix + " In 1492 a fleet sailed west from Spain."

	e, _ := newTestExtractor(t)

	ta := e.Timeline(a)
	tb := e.Timeline(b)
	require.Len(t, ta, 1)
	require.Len(t, tb, 1)
	assert.Equal(t, "1066", ta[0].Year)
	assert.Equal(t, "1492", tb[0].Year)

	assert.NotEqual(t, e.QuickFacts(a, "Normans"), e.QuickFacts(a, "Spain"))
}

// --- failure handling ---

func TestPanicIsRecoveredAndNotCached(t *testing.T) {
	var logs bytes.Buffer
	logger, _ := logging.New("error", "text", &logs)
	e, lru := newTestExtractor(t, WithGeocoder(panicGeocoder{}), WithIDGenerator(panicIDs{}), WithLogger(logger))

	assert.Empty(t, e.Locations("The Nile River flows north into the sea."))
	assert.Empty(t, e.RelatedTopics(romeText, "Rome"))
	assert.Equal(t, 0, lru.Stats().Len)
	assert.Contains(t, logs.String(), "extraction failed")
	assert.Contains(t, logs.String(), "op=locations")
	assert.Contains(t, logs.String(), "op=related")
}

func TestGuard(t *testing.T) {
	out, ok := guard(logging.Discard(), "test", func() []int { return []int{1} })
	assert.True(t, ok)
	assert.Equal(t, []int{1}, out)

	out, ok = guard(logging.Discard(), "test", func() []int {
		var s []int
		return s[3:]
	})
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestFallbackSections(t *testing.T) {
	got := fallbackSections("one\n\ntwo\n")
	assert.Equal(t, []types.Section{{ID: "content", Title: "Content", Content: []string{"one", "two"}}}, got)
}

// --- helpers ---

func TestParagraphs(t *testing.T) {
	got := paragraphs("  first \r\n\n \nsecond\n")
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestEnclosingSentence(t *testing.T) {
	p := "First part. The year 1900 was busy. Tail"
	start := strings.Index(p, "1900")

	got, ok := enclosingSentence(p, start, start+4)
	require.True(t, ok)
	assert.Equal(t, "The year 1900 was busy", got)

	tail := strings.Index(p, "Tail")
	_, ok = enclosingSentence(p, tail, tail+4)
	assert.False(t, ok)
}

func TestDefaultsWithoutOptions(t *testing.T) {
	e := New()
	locs := e.Locations("The Nile River flows north into the sea.")
	require.NotEmpty(t, locs)
	for _, l := range locs {
		assert.True(t, l.Synthetic)
	}
}
