package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/tenk/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SchemaVersion is the persisted-layout version written into the settings
// envelope. Bump it together with a migration when the layout changes.
const SchemaVersion = "1"

const schemaVersionKey = "schema_version"

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas, runs auto-migration, and stamps or
// verifies the schema-version envelope.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	s := &Store{db: db, client: client}
	if err := s.ensureSchemaVersion(context.Background()); err != nil {
		client.Close()
		return nil, err
	}
	return s, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// SkillRepo returns a SkillRepo backed by this store.
func (s *Store) SkillRepo() SkillRepo {
	return &skillRepo{client: s.client}
}

// ActiveRepo returns an ActiveRepo backed by this store.
func (s *Store) ActiveRepo() ActiveRepo {
	return &settingsRepo{client: s.client}
}

// Reset deletes every record: all skills, logs, and settings.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	if _, err := tx.DailyLog.Delete().Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("reset daily logs: %w", err))
	}
	if _, err := tx.Skill.Delete().Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("reset skills: %w", err))
	}
	if _, err := tx.Setting.Delete().Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("reset settings: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return s.ensureSchemaVersion(ctx)
}

func (s *Store) ensureSchemaVersion(ctx context.Context) error {
	repo := &settingsRepo{client: s.client}
	v, err := repo.get(ctx, schemaVersionKey)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if v == "" {
		if err := repo.set(ctx, schemaVersionKey, SchemaVersion); err != nil {
			return fmt.Errorf("stamp schema version: %w", err)
		}
		return nil
	}
	if v != SchemaVersion {
		return fmt.Errorf("unsupported schema version %s (want %s)", v, SchemaVersion)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. TENK_DB environment variable
// 2. $XDG_DATA_HOME/tenk/tenk.db
// 3. ~/.local/share/tenk/tenk.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TENK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "tenk", "tenk.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
