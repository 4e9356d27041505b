// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns article prose into teaching artifacts: a section
// outline, timeline events, key figures, locations, key terms,
// takeaways, quick facts, quiz questions and related topics.
//
// Every extractor is a heuristic pattern matcher. Each one takes the
// article text (and a title where relevant) and returns a plain slice of
// records, or an empty slice when the input is blank or an internal
// failure occurs. Failures are logged and never returned to the caller.
// Results are memoized in an injected cache.Cache keyed by operation and
// a full hash of the inputs.
package extract

import (
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/internal/logging"
)

// Operation tags used in cache keys and log records.
const (
	opSections  = "sections"
	opTimeline  = "timeline"
	opFigures   = "figures"
	opLocations = "locations"
	opTerms     = "terms"
	opTakeaways = "takeaways"
	opFacts     = "quickfacts"
	opQuiz      = "quiz"
	opRelated   = "related"
)

// Result caps.
const (
	maxTimelineEvents = 10
	maxKeyFigures     = 5
	maxLocations      = 8
	maxTakeaways      = 5
	maxQuizQuestions  = 5
	maxRelatedTopics  = 6
)

// minDescriptionLen is the exclusive lower bound on an enclosing
// sentence used as a description or definition.
const minDescriptionLen = 10

// Extractor runs the extraction heuristics. It is safe for concurrent use.
type Extractor struct {
	cache    cache.Cache
	log      *slog.Logger
	geocoder Geocoder
	ids      IDGenerator

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCache sets the result cache. The default is cache.Nop.
func WithCache(c cache.Cache) Option {
	return func(e *Extractor) { e.cache = c }
}

// WithLogger sets the logger for failures and cache activity.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) { e.log = l }
}

// WithRand sets the random source used to shuffle quiz questions and
// pick year distractors. The default mock geocoder is seeded from it as
// well, so a seeded source makes all output reproducible.
func WithRand(r *rand.Rand) Option {
	return func(e *Extractor) { e.rng = r }
}

// WithGeocoder sets the coordinate source for locations.
func WithGeocoder(g Geocoder) Option {
	return func(e *Extractor) { e.geocoder = g }
}

// WithIDGenerator sets the identifier source for related topics.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Extractor) { e.ids = g }
}

// New returns an Extractor. Without options it uses no cache, discards
// logs, draws randomness from an unseeded source, and uses the mock
// geocoder and mock ID generator.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		e.cache = cache.Nop{}
	}
	if e.log == nil {
		e.log = logging.Discard()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.geocoder == nil {
		e.geocoder = NewMockGeocoder(rand.New(rand.NewPCG(e.rng.Uint64(), e.rng.Uint64())))
	}
	if e.ids == nil {
		e.ids = MockIDGenerator{}
	}
	return e
}

// TopicID returns the identifier the configured generator assigns to a
// topic title. Related topics carry ids from the same source.
func (e *Extractor) TopicID(title string) string {
	return e.ids.ID(title)
}

// intN returns a random int in [0, n) from the shared source.
func (e *Extractor) intN(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.IntN(n)
}

// shuffle permutes n elements with the shared source.
func (e *Extractor) shuffle(n int, swap func(i, j int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng.Shuffle(n, swap)
}

// memo returns the cached result for key, or computes it with fn and
// caches it. dup copies results on the way in and out of the cache so
// callers never share backing arrays with it. A panic inside fn is
// logged and reported as ok=false; nothing is cached in that case.
func memo[E any](e *Extractor, op, key string, dup func([]E) []E, fn func() []E) (out []E, ok bool) {
	if v, hit := e.cache.Get(key); hit {
		if cached, isType := v.([]E); isType {
			e.log.Debug("extraction cache hit", "op", op)
			return dup(cached), true
		}
	}

	out, ok = guard(e.log, op, fn)
	if !ok {
		return nil, false
	}
	e.cache.Set(key, dup(out))
	return out, true
}

// guard runs fn and converts a panic into ok=false.
func guard[E any](log *slog.Logger, op string, fn func() []E) (out []E, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("extraction failed", "op", op, "panic", r)
			out, ok = nil, false
		}
	}()
	return fn(), true
}

// paragraphs splits content on line breaks, trims each line and drops
// blank ones.
func paragraphs(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// blank reports whether s holds no visible text.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// enclosingSentence returns the text between the last period before
// start and the first period at or after end, trimmed. ok is false when
// no period follows the match.
func enclosingSentence(p string, start, end int) (string, bool) {
	from := strings.LastIndexByte(p[:start], '.') + 1
	rel := strings.IndexByte(p[end:], '.')
	if rel < 0 {
		return "", false
	}
	return strings.TrimSpace(p[from : end+rel]), true
}

// runeLen counts characters, not bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// capped truncates s to at most n elements.
func capped[E any](s []E, n int) []E {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func cloneSlice[E any](s []E) []E {
	return slices.Clone(s)
}
