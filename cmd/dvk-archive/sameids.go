package main

import (
	"fmt"

	"github.com/drakovek/dvk-archive/internal/archive"
	"github.com/spf13/cobra"
)

var sameIDsCmd = &cobra.Command{
	Use:   "same-ids [directory]",
	Short: "Find DVK files with identical IDs",
	Long: `Load every DVK file under a directory (default: the current directory)
and report the files whose IDs collide with another file's ID.

Duplicates are reported, not treated as a failure: the command exits
successfully whether or not any are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := targetDir(args)
		if err != nil {
			return err
		}

		handler := archive.NewHandler(settings.MaxConcurrentLoads, printProgress)
		if err := handler.Load(cmd.Context(), []string{dir}); err != nil {
			return err
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Searching for DVK files with identical IDs...")
		paths := archive.SameIDs(handler)
		if len(paths) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No identical IDs found.")
			return nil
		}
		for _, path := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), relativeTo(dir, path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sameIDsCmd)
}
