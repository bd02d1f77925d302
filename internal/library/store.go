// Package library is the local SQLite store for favorites and reading
// progress. Both live in one database so the CLI carries a single file.
package library

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/jerrychoi/bookroad/internal/model"
	"github.com/jerrychoi/bookroad/pkg/aladin"
)

// UnknownContext marks progress rows toggled outside a roadmap view,
// where no subject or step is known.
const UnknownContext = "unknown"

// Favorite is one saved book.
type Favorite struct {
	ID        string
	BookKey   string
	Title     string
	Author    string
	Summary   string
	Cover     string
	Link      string
	ISBN13    string
	CreatedAt time.Time
}

// Progress is one book's completion record, with the roadmap context it
// was last completed under.
type Progress struct {
	BookKey     string
	ISBN13      string
	Title       string
	Author      string
	Subject     string
	Step        int
	Completed   bool
	CompletedAt *time.Time
}

// ProgressKey identifies a book across search, favorites and roadmap
// surfaces: the 13-digit ISBN when present, the vendor item id
// otherwise. Editions sharing an ISBN share progress.
func ProgressKey(b aladin.Book) string {
	if b.ISBN13 != "" {
		return "isbn13:" + b.ISBN13
	}
	return "id:" + strconv.Itoa(b.ItemID)
}

// Store wraps the library database.
type Store struct {
	db *sql.DB

	// Now is the clock used for created_at/completed_at stamps.
	Now func() time.Time
}

const libraryMigration = `
CREATE TABLE IF NOT EXISTS favorites (
	id         TEXT PRIMARY KEY,
	book_key   TEXT NOT NULL UNIQUE,
	title      TEXT NOT NULL,
	author     TEXT NOT NULL,
	summary    TEXT NOT NULL DEFAULT '',
	cover      TEXT NOT NULL DEFAULT '',
	link       TEXT NOT NULL DEFAULT '',
	isbn13     TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS book_progress (
	book_key     TEXT PRIMARY KEY,
	isbn13       TEXT NOT NULL DEFAULT '',
	title        TEXT NOT NULL,
	author       TEXT NOT NULL,
	subject      TEXT NOT NULL DEFAULT 'unknown',
	step         INTEGER NOT NULL DEFAULT 0,
	completed    INTEGER NOT NULL DEFAULT 0,
	completed_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_book_progress_subject
	ON book_progress(subject, step) WHERE completed = 1;
`

// Open opens (creating if needed) the library database at dsn.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "library: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "library: exec %s", pragma)
		}
	}
	if _, err := db.Exec(libraryMigration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "library: migrate")
	}
	return &Store{db: db, Now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// ToggleFavorite saves b, or removes it when already saved. Returns
// whether b is favorited after the call.
func (s *Store) ToggleFavorite(ctx context.Context, b aladin.Book) (bool, error) {
	key := b.Key()

	res, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE book_key = ?`, key)
	if err != nil {
		return false, eris.Wrap(err, "library: remove favorite")
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return false, nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO favorites (id, book_key, title, author, summary, cover, link, isbn13, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), key, b.Title, b.Author, b.Description, b.Cover, b.Link, b.ISBN13, s.Now().UTC(),
	)
	if err != nil {
		return false, eris.Wrap(err, "library: add favorite")
	}
	return true, nil
}

// IsFavorited reports whether the book key is saved.
func (s *Store) IsFavorited(ctx context.Context, bookKey string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE book_key = ?`, bookKey).Scan(&n)
	if err != nil {
		return false, eris.Wrap(err, "library: favorite lookup")
	}
	return n > 0, nil
}

// ListFavorites returns every saved book, newest first.
func (s *Store) ListFavorites(ctx context.Context) ([]Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, book_key, title, author, summary, cover, link, isbn13, created_at
		FROM favorites
		ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, eris.Wrap(err, "library: list favorites")
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.BookKey, &f.Title, &f.Author, &f.Summary,
			&f.Cover, &f.Link, &f.ISBN13, &f.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "library: scan favorite")
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ToggleCompleted flips b's completion state and returns the new state.
// Subject and step describe where the toggle happened; pass the zero
// values from non-roadmap surfaces and any earlier roadmap context is
// kept.
func (s *Store) ToggleCompleted(ctx context.Context, b aladin.Book, subject model.Subject, step int) (bool, error) {
	key := ProgressKey(b)
	now := s.Now().UTC()

	var completed bool
	err := s.db.QueryRowContext(ctx,
		`SELECT completed FROM book_progress WHERE book_key = ?`, key).Scan(&completed)
	switch {
	case err == sql.ErrNoRows:
		subj := string(subject)
		if subj == "" {
			subj = UnknownContext
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO book_progress (book_key, isbn13, title, author, subject, step, completed, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, 1, ?)`,
			key, b.ISBN13, b.Title, b.Author, subj, step, now,
		)
		if err != nil {
			return false, eris.Wrap(err, "library: record completion")
		}
		return true, nil
	case err != nil:
		return false, eris.Wrap(err, "library: progress lookup")
	}

	completed = !completed
	var completedAt any
	if completed {
		completedAt = now
	}
	_, err = s.db.ExecContext(ctx, `
		UPDATE book_progress
		SET completed = ?, completed_at = ?,
		    title = ?, author = ?, isbn13 = ?,
		    subject = CASE WHEN ? != '' THEN ? ELSE subject END,
		    step    = CASE WHEN ? != 0 THEN ? ELSE step END
		WHERE book_key = ?`,
		completed, completedAt,
		b.Title, b.Author, b.ISBN13,
		string(subject), string(subject),
		step, step,
		key,
	)
	if err != nil {
		return false, eris.Wrap(err, "library: update completion")
	}
	return completed, nil
}

// IsCompleted reports whether the progress key is marked complete.
func (s *Store) IsCompleted(ctx context.Context, bookKey string) (bool, error) {
	var completed bool
	err := s.db.QueryRowContext(ctx,
		`SELECT completed FROM book_progress WHERE book_key = ?`, bookKey).Scan(&completed)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrap(err, "library: progress lookup")
	}
	return completed, nil
}

// CompletedKeys returns the set of completed progress keys.
func (s *Store) CompletedKeys(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT book_key FROM book_progress WHERE completed = 1`)
	if err != nil {
		return nil, eris.Wrap(err, "library: completed keys")
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, eris.Wrap(err, "library: scan key")
		}
		out[key] = struct{}{}
	}
	return out, rows.Err()
}

// CompletedCount counts completed books for subject; step 0 counts
// across all steps.
func (s *Store) CompletedCount(ctx context.Context, subject model.Subject, step int) (int, error) {
	query := `SELECT COUNT(*) FROM book_progress WHERE completed = 1 AND subject = ?`
	args := []any{string(subject)}
	if step != 0 {
		query += ` AND step = ?`
		args = append(args, step)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, eris.Wrap(err, "library: completed count")
	}
	return n, nil
}

// ListProgress returns every progress row, completed first, newest
// completion first.
func (s *Store) ListProgress(ctx context.Context) ([]Progress, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT book_key, isbn13, title, author, subject, step, completed, completed_at
		FROM book_progress
		ORDER BY completed DESC, completed_at DESC, book_key`)
	if err != nil {
		return nil, eris.Wrap(err, "library: list progress")
	}
	defer rows.Close()

	var out []Progress
	for rows.Next() {
		var p Progress
		var completedAt sql.NullTime
		if err := rows.Scan(&p.BookKey, &p.ISBN13, &p.Title, &p.Author,
			&p.Subject, &p.Step, &p.Completed, &completedAt); err != nil {
			return nil, eris.Wrap(err, "library: scan progress")
		}
		if completedAt.Valid {
			t := completedAt.Time
			p.CompletedAt = &t
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
