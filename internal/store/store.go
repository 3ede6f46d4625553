package store

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for reservations.
// It holds exactly one database connection for its lifetime and is meant
// to be driven by a single caller; it performs no locking of its own.
type Store struct {
	db     *sqlx.DB
	path   string
	log    *slog.Logger
	closed bool
}

// Option configures a Store at Open.
type Option func(*Store)

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open creates or opens a SQLite database at the given path and ensures the
// reservations table exists. An empty path means DefaultPath.
//
// The database is configured with:
//   - WAL mode
//   - FULL synchronous mode so every auto-committed insert is durable
//   - 5-second busy timeout for locks held by other processes
//   - a single open connection
//
// Opening an existing file is safe: schema creation is idempotent and
// never alters or empties the table.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	s := &Store{path: path, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	// Open database (creates file if doesn't exist)
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, classify("open", fmt.Errorf("open database: %w", err))
	}

	// One connection for the lifetime of the store
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, classify("open", fmt.Errorf("connect to database: %w", err))
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, classify("open", err)
	}

	s.db = db
	if err := s.Init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	s.log.Debug("store opened", "path", path)
	return s, nil
}

// Init runs the schema statement against the open database.
// It is idempotent and commits immediately.
func (s *Store) Init(ctx context.Context) error {
	if s.closed {
		return closedError("init")
	}
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return classify("init", fmt.Errorf("apply schema: %w", err))
	}
	return nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the connection. Any later call, including a second Close,
// fails with ErrStoreClosed.
func (s *Store) Close() error {
	if s.closed || s.db == nil {
		return closedError("close")
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return classify("close", err)
	}
	s.log.Debug("store closed", "path", s.path)
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = FULL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	if err := s.db.QueryRow(fmt.Sprintf("PRAGMA %s", name)).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
