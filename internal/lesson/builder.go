// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lesson assembles extraction output into lessons and keeps them
// in a topic store so a revisited topic is not reprocessed.
package lesson

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/tutor-engine/internal/extract"
	"github.com/pdiddy/tutor-engine/internal/logging"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// ContentHash returns the hex SHA-256 of article content.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Builder runs every extractor over one article.
type Builder struct {
	ex  *extract.Extractor
	log *slog.Logger
}

// NewBuilder returns a Builder using ex. A nil logger discards output.
func NewBuilder(ex *extract.Extractor, log *slog.Logger) *Builder {
	if log == nil {
		log = logging.Discard()
	}
	return &Builder{ex: ex, log: log}
}

// now and newRunID are replaced in tests.
var (
	now      = func() time.Time { return time.Now().UTC() }
	newRunID = func() string { return uuid.NewString() }
)

// Build runs the sectionizer and each extractor in turn against the same
// article snapshot. Extractors never fail; an empty collection means the
// article offered nothing for that widget.
func (b *Builder) Build(a types.Article) *types.Lesson {
	l := &types.Lesson{
		TopicID:     a.ID,
		Title:       a.Title,
		ContentHash: ContentHash(a.Content),
		RunID:       newRunID(),
		GeneratedAt: now(),
		Content:     a.Content,
	}
	log := b.log.With("topic", a.ID, "run", l.RunID)

	l.Sections = b.ex.Sections(a.Content)
	l.Timeline = b.ex.Timeline(a.Content)
	l.KeyFigures = b.ex.KeyFigures(a.Content)
	l.Locations = b.ex.Locations(a.Content)
	l.KeyTerms = b.ex.KeyTerms(a.Content)
	l.Takeaways = b.ex.Takeaways(a.Content)
	l.QuickFacts = b.ex.QuickFacts(a.Content, a.Title)
	l.Quiz = b.ex.Quiz(a.Content, a.Title)
	l.RelatedTopics = b.ex.RelatedTopics(a.Content, a.Title)

	log.Debug("built lesson",
		"sections", len(l.Sections),
		"timeline", len(l.Timeline),
		"figures", len(l.KeyFigures),
		"locations", len(l.Locations),
		"terms", len(l.KeyTerms),
		"takeaways", len(l.Takeaways),
		"facts", len(l.QuickFacts),
		"questions", len(l.Quiz),
		"related", len(l.RelatedTopics),
	)
	return l
}
