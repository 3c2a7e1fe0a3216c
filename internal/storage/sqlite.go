package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// MemoryPath opens a private in-memory catalog.
const MemoryPath = ":memory:"

// SQLiteCatalog persists unit definitions in SQLite.
type SQLiteCatalog struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteCatalog opens (creating if needed) the catalog database at dbPath.
func NewSQLiteCatalog(dbPath string) (*SQLiteCatalog, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dsn := dbPath
	if dbPath != MemoryPath {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
		dsn += "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	// A single connection keeps an in-memory database alive between queries.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping catalog: %w", err)
	}

	return &SQLiteCatalog{db: db, dbPath: dbPath}, nil
}

// Path returns the database path the catalog was opened with.
func (c *SQLiteCatalog) Path() string {
	return c.dbPath
}

// Close closes the database connection.
func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}

// Open opens the catalog at dbPath and applies pending migrations.
func Open(ctx context.Context, dbPath string) (*SQLiteCatalog, error) {
	c, err := NewSQLiteCatalog(dbPath)
	if err != nil {
		return nil, err
	}
	if err := c.Migrate(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}
