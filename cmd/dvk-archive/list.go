package main

import (
	"fmt"

	"github.com/drakovek/dvk-archive/internal/archive"
	"github.com/spf13/cobra"
)

var (
	sortFlag  string
	groupFlag bool
)

var listCmd = &cobra.Command{
	Use:   "list [directory]",
	Short: "List DVK files in sorted order",
	Long: `Load every DVK file under a directory (default: the current directory)
and print one line per record in sorted order.

Sort modes: alpha (title), time (publication time), rating, views.
With --group-artists, records of the same artist are clustered together
before the sort mode applies.`,
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
		mode := sortFlag
		if mode == "" {
			mode = settings.SortMode
		}
		grouped := groupFlag
		if !cmd.Flags().Changed("group-artists") {
			grouped = settings.GroupArtists
		}
		handler.Sort(archive.ParseSortMode(mode), grouped)

		for i := 0; i < handler.Size(); i++ {
			d := handler.SortedDvk(i)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s  %s\n", d.Time, d.Title, d.ArtistString())
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&sortFlag, "sort", "s", "", "sort mode: alpha, time, rating, or views (default from config)")
	listCmd.Flags().BoolVarP(&groupFlag, "group-artists", "g", false, "group records of the same artist together")
	rootCmd.AddCommand(listCmd)
}
