// Package scores keeps a high-score table of finished sessions in SQLite.
package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/plus3/tetra/tetris"
)

var ErrClosed = errors.New("scores: store closed")

// Entry is one finished session.
type Entry struct {
	ID         int64
	Name       string
	Score      int
	Level      int
	Lines      int
	Pieces     int
	Frames     uint64
	RecordedAt time.Time
}

// EntryFromSession captures the final counters of session under name.
func EntryFromSession(name string, session *tetris.Session, at time.Time) Entry {
	return Entry{
		Name:       name,
		Score:      session.Score(),
		Level:      session.Level(),
		Lines:      session.Lines(),
		Pieces:     session.Locked(),
		Frames:     session.Frames(),
		RecordedAt: at.UTC(),
	}
}

type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the score database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			lines INTEGER NOT NULL,
			pieces INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			recorded_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS scores_rank ON scores(score DESC, recorded_at ASC);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Record inserts e and returns it with its assigned ID.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return e, ErrClosed
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO scores(name, score, level, lines, pieces, frames, recorded_at) VALUES(?,?,?,?,?,?,?)`,
		e.Name, e.Score, e.Level, e.Lines, e.Pieces, int64(e.Frames), e.RecordedAt.UnixNano(),
	)
	if err != nil {
		return e, fmt.Errorf("scores: record: %w", err)
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return e, fmt.Errorf("scores: record: %w", err)
	}
	return e, nil
}

// Top returns up to limit entries, highest score first. Ties go to the
// earlier entry.
func (s *Store) Top(ctx context.Context, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, score, level, lines, pieces, frames, recorded_at
		FROM scores ORDER BY score DESC, recorded_at ASC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("scores: top: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e      Entry
			frames int64
			at     int64
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Level, &e.Lines, &e.Pieces, &frames, &at); err != nil {
			return nil, fmt.Errorf("scores: top: %w", err)
		}
		e.Frames = uint64(frames)
		e.RecordedAt = time.Unix(0, at).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
