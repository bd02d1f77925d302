package respcache

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the durable tier using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the cache database at dsn and configures
// WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "respcache: open sqlite")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "respcache: exec %s", pragma)
		}
	}

	const migration = `
CREATE TABLE IF NOT EXISTS response_cache (
	url        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	written_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_response_cache_written_at ON response_cache(written_at);
`
	if _, err := db.Exec(migration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "respcache: migrate")
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get returns the cached body for key. An entry older than ttl is
// deleted and reported as absent.
func (s *SQLiteStore) Get(ctx context.Context, key string, now time.Time, ttl time.Duration) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT body, written_at FROM response_cache WHERE url = ?`, key)

	var body []byte
	var writtenAt time.Time
	err := row.Scan(&body, &writtenAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, eris.Wrap(err, "respcache: get")
	}

	if now.Sub(writtenAt) >= ttl {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM response_cache WHERE url = ?`, key); err != nil {
			return nil, false, eris.Wrap(err, "respcache: delete expired")
		}
		return nil, false, nil
	}

	return body, true, nil
}

// Put stores body under key, replacing any previous entry and resetting
// its TTL.
func (s *SQLiteStore) Put(ctx context.Context, key string, body []byte, now time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO response_cache (url, body, written_at) VALUES (?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET body = excluded.body, written_at = excluded.written_at`,
		key, body, now.UTC(),
	)
	return eris.Wrap(err, "respcache: put")
}

// PurgeExpired deletes every entry older than ttl and reports how many
// rows were removed.
func (s *SQLiteStore) PurgeExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM response_cache WHERE written_at <= ?`, now.Add(-ttl).UTC())
	if err != nil {
		return 0, eris.Wrap(err, "respcache: purge expired")
	}
	n, err := res.RowsAffected()
	return int(n), eris.Wrap(err, "respcache: rows affected")
}

// Count reports the durable row count.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM response_cache`).Scan(&n)
	return n, eris.Wrap(err, "respcache: count")
}
