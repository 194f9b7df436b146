package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/drakovek/dvk-archive/internal/archive"
	"github.com/drakovek/dvk-archive/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFlag  string
	verboseFlag bool
	settings    *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "dvk-archive",
	Short: "Manage DVK media archives",
	Long: `dvk-archive works with archives of DVK files: JSON sidecar records
describing downloaded media items (title, artists, tags, rating, views,
publication time) stored next to the media they describe.

It loads every record under a directory tree, sorts them, and audits the
archive for records with identical IDs.

For an interactive browser, use: dvk-browse`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		settings, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "show verbose output")
}

// targetDir resolves the optional directory argument, defaulting to the
// current working directory.
func targetDir(args []string) (string, error) {
	if len(args) > 0 {
		return filepath.Abs(args[0])
	}
	return os.Getwd()
}

// printProgress writes load progress to stderr so record listings on
// stdout stay clean.
func printProgress(event archive.ProgressEvent) {
	if event.Level == archive.LevelVerbose && !verboseFlag {
		return
	}
	fmt.Fprintln(os.Stderr, event.Message)
}

// relativeTo shortens a path relative to dir when possible.
func relativeTo(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}
