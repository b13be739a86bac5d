// Package database exports an archive's contents to a queryable SQLite
// database: one row per packed file, one row per recognised game object.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Database represents a connection to the slamdb SQLite database
type Database struct {
	db   *sql.DB
	path string
}

// Options configures database creation and connection behavior
type Options struct {
	// Path to the SQLite database file
	Path string

	// WALMode enables Write-Ahead Logging mode for better concurrency
	WALMode bool

	// ForeignKeys enables foreign key constraint checking
	ForeignKeys bool

	// BusyTimeout sets the timeout for locked database operations
	BusyTimeout time.Duration
}

// DefaultOptions returns sensible default options for database connections
func DefaultOptions(path string) *Options {
	return &Options{
		Path:        path,
		WALMode:     true,
		ForeignKeys: true,
		BusyTimeout: 30 * time.Second,
	}
}

// New creates a new database connection with the given options
func New(options *Options) (*Database, error) {
	if options == nil {
		return nil, fmt.Errorf("database options cannot be nil")
	}

	if options.Path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	// Create the directory if it doesn't exist
	if err := ensureDirectory(options.Path); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", connectionString(options))
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", options.Path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("testing database connection: %w", err)
	}

	return &Database{db: db, path: options.Path}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}

	err := d.db.Close()
	d.db = nil

	if err != nil {
		return fmt.Errorf("closing database connection: %w", err)
	}

	return nil
}

// Exec executes a SQL statement that doesn't return rows
func (d *Database) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if d.db == nil {
		return nil, fmt.Errorf("database connection is closed")
	}

	result, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing statement: %w", err)
	}
	return result, nil
}

// BeginTx starts a new transaction
func (d *Database) BeginTx(ctx context.Context) (*sql.Tx, error) {
	if d.db == nil {
		return nil, fmt.Errorf("database connection is closed")
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	return tx, nil
}

func connectionString(options *Options) string {
	var pragmas []string
	if options.WALMode {
		pragmas = append(pragmas, "_journal_mode=WAL")
	}
	if options.ForeignKeys {
		pragmas = append(pragmas, "_foreign_keys=on")
	}
	if options.BusyTimeout > 0 {
		pragmas = append(pragmas, fmt.Sprintf("_busy_timeout=%d", options.BusyTimeout.Milliseconds()))
	}
	if len(pragmas) == 0 {
		return options.Path
	}
	return options.Path + "?" + strings.Join(pragmas, "&")
}

func ensureDirectory(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
