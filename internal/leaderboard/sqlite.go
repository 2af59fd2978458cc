// internal/leaderboard/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Keeping the leaderboard table ranked and trimmed to MaxEntries rows.

package leaderboard

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/game"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLite is a Store persisted in a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at dsn and applies
// migrations. ":memory:" gives a private in-memory board.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// openDB opens a SQLite database file.
//
//   - Ensures the parent directory exists for relative paths (e.g. ./data/leaderboard.db).
//   - Configures busy timeout and WAL journaling mode.
func openDB(dsn string) (*sql.DB, error) {
	inMemory := strings.Contains(dsn, ":memory:")
	if !inMemory {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if inMemory {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dsn, err)
	}
	return db, nil
}

// migrate applies the embedded sql/*.sql files in lexical order, each in its
// own transaction, skipping files already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Submit upserts e, keeping the best score per name, then trims the table
// to MaxEntries rows.
func (s *SQLite) Submit(ctx context.Context, e Entry) error {
	e, err := normalize(e)
	if err != nil {
		return err
	}
	if e.Score == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
        INSERT INTO leaderboard (name, score, difficulty, mode, recorded_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(name) DO UPDATE SET
            name        = excluded.name,
            score       = excluded.score,
            difficulty  = excluded.difficulty,
            mode        = excluded.mode,
            recorded_at = excluded.recorded_at
        WHERE excluded.score > leaderboard.score`,
		e.Name, e.Score, e.Difficulty.String(), string(e.Mode), e.RecordedAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("upsert %s: %w", e.Name, err)
	}

	if _, err := tx.ExecContext(ctx, `
        DELETE FROM leaderboard
        WHERE name NOT IN (
            SELECT name FROM leaderboard
            ORDER BY score DESC, recorded_at ASC, name COLLATE BINARY ASC
            LIMIT ?)`, MaxEntries,
	); err != nil {
		return fmt.Errorf("trim: %w", err)
	}
	return tx.Commit()
}

// Top fetches the first n rows in rank order.
func (s *SQLite) Top(ctx context.Context, n int) ([]Entry, error) {
	n = limit(n)
	rows, err := s.db.QueryContext(ctx, `
        SELECT name, score, difficulty, mode, recorded_at
        FROM leaderboard
        ORDER BY score DESC, recorded_at ASC, name COLLATE BINARY ASC
        LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, n)
	for rows.Next() {
		var (
			e    Entry
			diff string
			mode string
			ns   int64
		)
		if err := rows.Scan(&e.Name, &e.Score, &diff, &mode, &ns); err != nil {
			return nil, err
		}
		if e.Difficulty, err = words.ParseDifficulty(diff); err != nil {
			return nil, fmt.Errorf("row %s: %w", e.Name, err)
		}
		e.Mode = game.Mode(mode)
		e.RecordedAt = time.Unix(0, ns).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
