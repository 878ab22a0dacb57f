// Package journal keeps an append-only record of decisions in SQLite.
package journal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // database/sql driver
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store implements ports.Journal. The database is opened and migrated on
// first use so commands that never touch the journal never create it.
type Store struct {
	path string

	once    sync.Once
	db      *sql.DB
	openErr error
}

// NewStore creates a Store for the database at path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) open() (*sql.DB, error) {
	s.once.Do(func() {
		s.db, s.openErr = openAndMigrate(s.path)
	})
	return s.db, s.openErr
}

func openAndMigrate(path string) (*sql.DB, error) {
	wrap := func(err error) error {
		return zerr.With(zerr.Wrap(err, domain.ErrJournalOpenFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, wrap(err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000")
	if err != nil {
		return nil, wrap(err)
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, wrap(err)
	}
	return db, nil
}

// runMigrations applies the embedded migrations. The migrate instance is not
// closed because closing its database driver would close db.
func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		_ = src.Close()
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		_ = src.Close()
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Open creates and migrates the database now instead of on first use.
func (s *Store) Open(_ context.Context) error {
	_, err := s.open()
	return err
}

// Append records an entry, assigning an ID and time when they are unset.
func (s *Store) Append(ctx context.Context, entry domain.JournalEntry) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO entries (id, created_at, file, program, tier, auto, launched, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Time.UnixNano(),
		entry.File,
		entry.Program.String(),
		entry.Tier.String(),
		entry.Auto,
		entry.Launched,
		entry.Error,
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJournalWriteFailed.Error()), "file", entry.File)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// uses the default.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = domain.DefaultJournalLimit
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, created_at, file, program, tier, auto, launched, error
		 FROM entries ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrJournalReadFailed.Error())
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.JournalEntry
	for rows.Next() {
		var (
			e        domain.JournalEntry
			nanos    int64
			program  string
			tier     string
			auto     bool
			launched bool
		)
		if err := rows.Scan(&e.ID, &nanos, &e.File, &program, &tier, &auto, &launched, &e.Error); err != nil {
			return nil, zerr.Wrap(err, domain.ErrJournalReadFailed.Error())
		}
		e.Time = time.Unix(0, nanos)
		e.Program = domain.ParseProgram(program)
		e.Tier = domain.ParseTier(tier)
		e.Auto = auto
		e.Launched = launched
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrJournalReadFailed.Error())
	}
	return entries, nil
}

// Close releases the database if it was opened. A journal closed before
// first use stays unopened.
func (s *Store) Close() error {
	s.once.Do(func() {
		s.openErr = zerr.With(domain.ErrJournalOpenFailed, "reason", "closed")
	})
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
