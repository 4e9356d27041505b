// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lesson

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

const dbFile = "lessons.db"

// ErrNotFound is returned when no lesson is stored for a topic.
var ErrNotFound = errors.New("lesson not found")

// Store is the topic-level cache: one lesson per topic id.
type Store interface {
	Get(ctx context.Context, topicID string) (*types.Lesson, error)
	Put(ctx context.Context, l *types.Lesson) error
}

// Summary is a lesson row without its payload.
type Summary struct {
	TopicID     string    `json:"topic_id" yaml:"topic_id"`
	Title       string    `json:"title" yaml:"title"`
	ContentHash string    `json:"content_hash" yaml:"content_hash"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// SQLiteStore keeps lessons in dir/lessons.db with an FTS5 index over
// title and article text.
type SQLiteStore struct {
	db  *sql.DB
	dir string
}

// NewSQLiteStore opens or creates the lesson database under cfg.Dir and
// creates the schema if it does not exist.
func NewSQLiteStore(cfg types.StoreConfig) (*SQLiteStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(cfg.Dir, dbFile)+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db, dir: cfg.Dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS lessons (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		topic_id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		content_hash TEXT NOT NULL,
		run_id TEXT NOT NULL,
		generated_at TEXT NOT NULL,
		payload TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("creating lessons table: %w", err)
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='lessons_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists > 0 {
		return nil
	}

	for _, stmt := range []string{
		`CREATE VIRTUAL TABLE lessons_fts USING fts5(title, content, content=lessons, content_rowid=rowid)`,
		`CREATE TRIGGER lessons_ai AFTER INSERT ON lessons BEGIN
			INSERT INTO lessons_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
		END`,
		`CREATE TRIGGER lessons_ad AFTER DELETE ON lessons BEGIN
			INSERT INTO lessons_fts(lessons_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
		END`,
		`CREATE TRIGGER lessons_au AFTER UPDATE ON lessons BEGIN
			INSERT INTO lessons_fts(lessons_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
			INSERT INTO lessons_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
		END`,
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating FTS infrastructure: %w", err)
		}
	}
	return nil
}

// Get returns the stored lesson for topicID or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, topicID string) (*types.Lesson, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM lessons WHERE topic_id = ?`, topicID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("topic %s: %w", topicID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up topic %s: %w", topicID, err)
	}

	var l types.Lesson
	if err := json.Unmarshal([]byte(payload), &l); err != nil {
		return nil, fmt.Errorf("decoding lesson %s: %w", topicID, err)
	}
	return &l, nil
}

// Put inserts the lesson or replaces the one stored for its topic.
func (s *SQLiteStore) Put(ctx context.Context, l *types.Lesson) error {
	if l.TopicID == "" {
		return errors.New("lesson has no topic id")
	}
	payload, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding lesson %s: %w", l.TopicID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO lessons (topic_id, title, content, content_hash, run_id, generated_at, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(topic_id) DO UPDATE SET
			title=excluded.title, content=excluded.content, content_hash=excluded.content_hash,
			run_id=excluded.run_id, generated_at=excluded.generated_at, payload=excluded.payload`,
		l.TopicID, l.Title, l.Content, l.ContentHash, l.RunID,
		l.GeneratedAt.UTC().Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return fmt.Errorf("upserting lesson %s: %w", l.TopicID, err)
	}
	return nil
}

// Delete removes the lesson for topicID. Deleting a missing topic
// returns ErrNotFound.
func (s *SQLiteStore) Delete(ctx context.Context, topicID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lessons WHERE topic_id = ?`, topicID)
	if err != nil {
		return fmt.Errorf("deleting topic %s: %w", topicID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting topic %s: %w", topicID, err)
	}
	if n == 0 {
		return fmt.Errorf("topic %s: %w", topicID, ErrNotFound)
	}
	return nil
}

// List returns every stored lesson ordered by title.
func (s *SQLiteStore) List(ctx context.Context) ([]Summary, error) {
	return s.summaries(ctx,
		`SELECT topic_id, title, content_hash, generated_at FROM lessons ORDER BY title, topic_id`)
}

// Search runs an FTS5 query over lesson titles and article text, best
// matches first. limit <= 0 means 20.
func (s *SQLiteStore) Search(ctx context.Context, query string, limit int) ([]Summary, error) {
	if query == "" {
		return nil, errors.New("search query required")
	}
	if limit <= 0 {
		limit = 20
	}
	return s.summaries(ctx,
		`SELECT l.topic_id, l.title, l.content_hash, l.generated_at
		 FROM lessons_fts
		 JOIN lessons l ON l.rowid = lessons_fts.rowid
		 WHERE lessons_fts MATCH ?
		 ORDER BY lessons_fts.rank
		 LIMIT ?`, query, limit)
}

func (s *SQLiteStore) summaries(ctx context.Context, query string, args ...any) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying lessons: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sm  Summary
			gen string
		)
		if err := rows.Scan(&sm.TopicID, &sm.Title, &sm.ContentHash, &gen); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, gen); err == nil {
			sm.GeneratedAt = t
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

// all returns every stored lesson ordered by topic id.
func (s *SQLiteStore) all(ctx context.Context) ([]types.Lesson, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT topic_id, payload FROM lessons ORDER BY topic_id`)
	if err != nil {
		return nil, fmt.Errorf("querying lessons: %w", err)
	}
	defer rows.Close()

	var out []types.Lesson
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		var l types.Lesson
		if err := json.Unmarshal([]byte(payload), &l); err != nil {
			return nil, fmt.Errorf("decoding lesson %s: %w", id, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
