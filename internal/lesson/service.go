// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lesson

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/pdiddy/tutor-engine/internal/logging"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// Service loads lessons for articles, reusing a stored lesson when the
// article text has not changed since it was built.
type Service struct {
	builder *Builder
	store   Store
	log     *slog.Logger
}

// NewService returns a Service. store may be nil, in which case every
// call builds a fresh lesson and nothing is persisted.
func NewService(b *Builder, store Store, log *slog.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{builder: b, store: store, log: log}
}

// Load returns the lesson for a. cached reports that the stored lesson
// was reused. An article without an id takes the id its title hashes
// to; an article with neither id nor title is keyed by its content hash
// so untitled articles never share a topic. Store failures are logged
// and the built lesson is still returned; the only error is a cancelled
// context.
func (s *Service) Load(ctx context.Context, a types.Article) (l *types.Lesson, cached bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	switch {
	case strings.TrimSpace(a.ID) != "":
	case strings.TrimSpace(a.Title) != "":
		a.ID = s.builder.ex.TopicID(a.Title)
	default:
		a.ID = ContentHash(a.Content)
	}
	log := s.log.With("topic", a.ID)

	if s.store != nil {
		stored, err := s.store.Get(ctx, a.ID)
		switch {
		case err == nil && stored.ContentHash == ContentHash(a.Content):
			log.Debug("reusing stored lesson", "run", stored.RunID)
			return stored, true, nil
		case err == nil:
			log.Debug("article changed, rebuilding")
		case errors.Is(err, ErrNotFound):
		default:
			log.Warn("store lookup failed", "error", err)
		}
	}

	l = s.builder.Build(a)
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	if s.store != nil {
		if err := s.store.Put(ctx, l); err != nil {
			log.Warn("store write failed", "error", err)
		}
	}
	return l, false, nil
}
