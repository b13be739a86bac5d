package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wgrayson/slamdb/internal/archive"
	"github.com/wgrayson/slamdb/internal/utils"
)

var (
	repackOutDat string
	repackOutDir string
)

var repackCmd = &cobra.Command{
	Use:   "repack <directory>",
	Short: "Build a new archive pair from a directory tree",
	Long: `Repack walks a previously extracted directory tree and packs every file
into a fresh MASTER.DAT/MASTER.DIR pair, compressing each payload. The
directory argument should be the extraction root, i.e. the directory
containing data/.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		root := args[0]

		// Collect the file list first so the progress bar has a total.
		var files []string
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("walking %s: %w", root, err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no files found under %s", root)
		}
		slog.Info("Repacking", "files", len(files), "root", root)

		store, err := archive.Open(nil, &archive.Dir{}, cfg.GameConsole())
		if err != nil {
			return err
		}

		progress := utils.NewProgress(len(files), progressEnabled())
		for _, file := range files {
			rel, err := filepath.Rel(root, file)
			if err != nil {
				return err
			}
			archivePath := utils.ToArchivePath(rel)
			progress.Increment(archivePath)

			contents, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			store.Update(archivePath, contents)
		}
		progress.Finish()

		if err := writeArchive(store, repackOutDat, repackOutDir); err != nil {
			return err
		}

		slog.Info("Repack complete",
			"files", utils.Number(int64(len(files))),
			"dat", repackOutDat,
			"dir", repackOutDir,
			"duration", utils.Duration(time.Since(start)))
		return nil
	},
}

func init() {
	repackCmd.Flags().StringVar(&repackOutDat, "out-dat", "MASTER.DAT", "path for the rebuilt MASTER.DAT")
	repackCmd.Flags().StringVar(&repackOutDir, "out-dir", "MASTER.DIR", "path for the rebuilt MASTER.DIR")
	rootCmd.AddCommand(repackCmd)
}
