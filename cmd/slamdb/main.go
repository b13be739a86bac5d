package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/wgrayson/slamdb/internal/archive"
	"github.com/wgrayson/slamdb/internal/config"
	"github.com/wgrayson/slamdb/internal/console"
)

var (
	cfg     *config.Config
	cfgFile string

	consoleName string
	dirPath     string
	datPath     string
	dbPath      string
	logLevel    string
	logFormat   string
	noProgress  bool
)

var rootCmd = &cobra.Command{
	Use:   "slamdb",
	Short: "Shrek SuperSlam archive extraction and editing tool",
	Long: `slamdb reads and rewrites the MASTER.DIR/MASTER.DAT archive pair that holds
all of Shrek SuperSlam's game assets, for any of the four console releases.

It extracts packed files, repacks modified ones, enumerates the serialised game
objects inside .bin files, and edits attack data in place.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if cmd.Flags().Changed("console") {
			cfg.Console = consoleName
		}
		if cmd.Flags().Changed("dir") {
			cfg.Dir = dirPath
		}
		if cmd.Flags().Changed("dat") {
			cfg.Dat = datPath
		}
		if cmd.Flags().Changed("database") {
			cfg.Database = dbPath
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}

		if _, err := console.Parse(cfg.Console); err != nil {
			return err
		}

		var level slog.Level
		switch cfg.LogLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		var handler slog.Handler
		if cfg.LogFormat == "json" {
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})
		} else {
			handler = tint.NewHandler(os.Stderr, &tint.Options{
				Level: level,
			})
		}

		slog.SetDefault(slog.New(handler))

		slog.Debug("Configuration",
			"console", cfg.Console,
			"dir", cfg.Dir,
			"dat", cfg.Dat,
			"database", cfg.Database,
			"log_level", cfg.LogLevel,
			"log_format", cfg.LogFormat)

		return nil
	},
}

// openArchive reads the configured MASTER.DIR/MASTER.DAT pair into a Store.
func openArchive() (*archive.Store, error) {
	c := cfg.GameConsole()

	dirBytes, err := os.ReadFile(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.Dir, err)
	}
	dir, err := archive.ParseDir(dirBytes, c)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", cfg.Dir, err)
	}

	dat, err := os.ReadFile(cfg.Dat)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.Dat, err)
	}
	store, err := archive.Open(dat, dir, c)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.Dat, err)
	}
	return store, nil
}

// writeArchive emits a store's current state to the given pair of paths.
func writeArchive(store *archive.Store, datPath, dirPath string) error {
	dat, dirBytes, err := store.Emit()
	if err != nil {
		return fmt.Errorf("rebuilding archive: %w", err)
	}
	if err := os.WriteFile(datPath, dat, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", datPath, err)
	}
	if err := os.WriteFile(dirPath, dirBytes, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dirPath, err)
	}
	return nil
}

// progressEnabled reports whether a progress bar should render given the
// logging configuration.
func progressEnabled() bool {
	return !(noProgress || cfg.LogFormat == "json" || cfg.LogLevel == "debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is slamdb.yaml in pwd)")
	rootCmd.PersistentFlags().StringVarP(&consoleName, "console", "c", "", "console the archive is from (pc, gamecube, ps2, xbox)")
	rootCmd.PersistentFlags().StringVar(&dirPath, "dir", "", "path to the MASTER.DIR file")
	rootCmd.PersistentFlags().StringVar(&datPath, "dat", "", "path to the MASTER.DAT file")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "database", "d", "", "database file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress bar")
}
