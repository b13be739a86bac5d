package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wgrayson/slamdb/internal/console"
	"github.com/wgrayson/slamdb/internal/texpack"
	"github.com/wgrayson/slamdb/internal/utils"
)

var (
	extractOutput   string
	extractRaw      bool
	extractTexpacks bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract every file from the archive to disk",
	Long: `Extract reads the MASTER.DIR/MASTER.DAT pair and writes each packed file to
disk under the output directory, recreating the archive's internal directory
tree. Files are decompressed unless --raw is given. With --texpacks, each
.texpack texture container is additionally unpacked into a sibling
"<name>.texpack-extracted" directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		store, err := openArchive()
		if err != nil {
			return err
		}
		paths := store.Paths()
		slog.Info("Extracting archive", "files", len(paths), "output", extractOutput)

		progress := utils.NewProgress(len(paths), progressEnabled())

		var written int64
		for _, path := range paths {
			progress.Increment(path)

			var data []byte
			if extractRaw {
				data, err = store.Compressed(path)
			} else {
				data, err = store.Decompressed(path)
			}
			if err != nil {
				return err
			}

			dest := utils.ToOSPath(extractOutput, path)
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
			}
			if err := os.WriteFile(dest, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}
			written += int64(len(data))

			if extractTexpacks && !extractRaw && strings.HasSuffix(path, ".texpack") {
				if err := extractTexpack(dest, data, store.Console()); err != nil {
					return err
				}
			}
		}
		progress.Finish()

		slog.Info("Extraction complete",
			"files", utils.Number(int64(len(paths))),
			"bytes", utils.Bytes(written),
			"duration", utils.Duration(time.Since(start)))
		return nil
	},
}

// extractTexpack unpacks an extracted .texpack's contents into a sibling
// directory named after it. A pack that does not parse is logged and
// skipped; the container file itself is already on disk.
func extractTexpack(dest string, data []byte, c console.Console) error {
	pack, err := texpack.Parse(data, c)
	if err != nil {
		slog.Warn("Skipping unreadable texpack", "path", dest, "error", err)
		return nil
	}

	dir := dest + "-extracted"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for i := range pack.Files {
		f := &pack.Files[i]
		name := filepath.Join(dir, f.Filename(c))
		if err := os.WriteFile(name, f.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", ".", "directory to extract into")
	extractCmd.Flags().BoolVar(&extractRaw, "raw", false, "write stored bytes without decompressing")
	extractCmd.Flags().BoolVar(&extractTexpacks, "texpacks", false, "also unpack .texpack containers")
	rootCmd.AddCommand(extractCmd)
}
