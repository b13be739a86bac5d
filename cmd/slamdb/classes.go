package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wgrayson/slamdb/internal/bin"
	"github.com/wgrayson/slamdb/internal/console"
	"github.com/wgrayson/slamdb/internal/database"
	"github.com/wgrayson/slamdb/internal/utils"
)

var classesExport bool

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the game objects inside every .bin file",
	Long: `Classes walks every .bin file in the archive and prints the serialised game
objects each one contains, with their offsets and class names. With --export,
the inventory is also written to the configured SQLite database for querying.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		store, err := openArchive()
		if err != nil {
			return err
		}
		c := store.Console()

		var db *database.Database
		if classesExport {
			db, err = database.New(database.DefaultOptions(cfg.Database))
			if err != nil {
				return fmt.Errorf("creating database: %w", err)
			}
			defer db.Close()
			if err := db.CreateSchema(context.Background()); err != nil {
				return err
			}
		}

		var fileRows []database.FileRow
		var objectRows []database.ObjectRow
		var total int

		for _, path := range store.Paths() {
			if classesExport {
				e := store.Dir().Lookup(path)
				fileRows = append(fileRows, database.FileRow{
					Path:             path,
					DecompressedSize: int64(e.DecompressedSize),
					CompressedSize:   int64(e.CompressedSize),
					Compressed:       e.Compressed(),
				})
			}
			if !strings.HasSuffix(path, ".bin") {
				continue
			}

			buf, err := store.Decompressed(path)
			if err != nil {
				slog.Warn("Skipping unreadable file", "path", path, "error", err)
				continue
			}

			records, names := binObjects(buf, path, c)
			if len(records) == 0 {
				continue
			}
			total += len(records)

			fmt.Printf("%s (%d objects)\n", path, len(records))
			for _, record := range records {
				name := names[record.Offset]
				if name != "" {
					fmt.Printf("\t+%04x: %s (%s)\n", record.Offset, record.Class.Name, name)
				} else {
					fmt.Printf("\t+%04x: %s\n", record.Offset, record.Class.Name)
				}
				if classesExport {
					objectRows = append(objectRows, database.ObjectRow{
						FilePath: path,
						Offset:   int64(record.Offset),
						Hash:     record.Hash,
						Class:    record.Class.Name,
						Name:     name,
					})
				}
			}
		}

		if classesExport {
			if err := db.InsertFiles(context.Background(), fileRows); err != nil {
				return err
			}
			if err := db.InsertObjects(context.Background(), objectRows); err != nil {
				return err
			}
			slog.Info("Exported inventory", "database", cfg.Database,
				"files", len(fileRows), "objects", len(objectRows))
		}

		slog.Info("Enumeration complete",
			"objects", utils.Number(int64(total)),
			"duration", utils.Duration(time.Since(start)))
		return nil
	},
}

// binObjects lists the objects in a .bin buffer, preferring the file's own
// pointer table and falling back to a raw scan when the table references
// classes without registered layouts. Named gf::DB entries are returned
// keyed by object offset.
func binObjects(buf []byte, path string, c console.Console) ([]bin.Record, map[int]string) {
	names := make(map[int]string)

	f, err := bin.ParseFile(buf, c)
	if err != nil {
		slog.Debug("Falling back to raw scan", "path", path, "error", err)
		var records []bin.Record
		for record := range bin.Scan(buf, c) {
			records = append(records, record)
		}
		return records, names
	}

	if entries, err := f.DB(); err == nil {
		for _, entry := range entries {
			names[entry.Offset] = entry.Name
		}
	}
	return f.Objects, names
}

func init() {
	classesCmd.Flags().BoolVar(&classesExport, "export", false, "export the inventory to the SQLite database")
	rootCmd.AddCommand(classesCmd)
}
