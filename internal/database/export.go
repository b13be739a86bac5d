package database

import (
	"context"
	"fmt"
)

// FileRow describes one packed archive file.
type FileRow struct {
	Path             string
	DecompressedSize int64
	CompressedSize   int64
	Compressed       bool
}

// ObjectRow describes one recognised game object within a packed file.
type ObjectRow struct {
	FilePath string
	Offset   int64
	Hash     uint32
	Class    string
	Name     string // gf::DB entry name, empty when the object is unnamed
}

const schema = `
CREATE TABLE IF NOT EXISTS files (
	path              TEXT PRIMARY KEY,
	decompressed_size INTEGER NOT NULL,
	compressed_size   INTEGER NOT NULL,
	compressed        INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS objects (
	file_path TEXT NOT NULL REFERENCES files(path),
	offset    INTEGER NOT NULL,
	hash      INTEGER NOT NULL,
	class     TEXT NOT NULL,
	name      TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (file_path, offset)
);

CREATE INDEX IF NOT EXISTS idx_objects_class ON objects(class);
`

// CreateSchema creates the export tables if they do not exist
func (d *Database) CreateSchema(ctx context.Context) error {
	if _, err := d.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating export schema: %w", err)
	}
	return nil
}

// InsertFiles inserts archive file rows in a single transaction
func (d *Database) InsertFiles(ctx context.Context, rows []FileRow) error {
	tx, err := d.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO files (path, decompressed_size, compressed_size, compressed)
		 VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing file insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Path, row.DecompressedSize, row.CompressedSize, row.Compressed); err != nil {
			return fmt.Errorf("inserting file %s: %w", row.Path, err)
		}
	}
	return tx.Commit()
}

// InsertObjects inserts object rows in a single transaction
func (d *Database) InsertObjects(ctx context.Context, rows []ObjectRow) error {
	tx, err := d.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO objects (file_path, offset, hash, class, name)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing object insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.FilePath, row.Offset, int64(row.Hash), row.Class, row.Name); err != nil {
			return fmt.Errorf("inserting object %s+%#x: %w", row.FilePath, row.Offset, err)
		}
	}
	return tx.Commit()
}
