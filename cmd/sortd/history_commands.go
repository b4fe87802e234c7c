package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newHistoryCommand(cctx *commandContext) *cobra.Command {
	var limit int
	var allDirs bool

	historyCmd := &cobra.Command{
		Use:   "history [directory]",
		Short: "List recorded batches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if !allDirs {
				resolved, err := resolveDirectory(args)
				if err != nil {
					return err
				}
				dir = resolved
			}
			out := cmd.OutOrStdout()

			store, err := cctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			batches, err := store.Recent(cmd.Context(), dir, limit)
			if err != nil {
				return err
			}
			if len(batches) == 0 {
				fmt.Fprintln(out, "No batches recorded.")
				return nil
			}

			rows := make([][]string, 0, len(batches))
			for _, b := range batches {
				rows = append(rows, []string{
					humanize.Time(b.CreatedAt),
					b.Directory,
					strconv.Itoa(b.Moved),
					strconv.Itoa(b.Skipped),
					strconv.Itoa(b.Errors),
					yesNo(b.Undone),
				})
			}
			headers := []string{"When", "Directory", "Moved", "Skipped", "Errors", "Undone"}
			fmt.Fprintln(out, renderTable(headers, rows, 2, 3, 4))
			return nil
		},
	}

	historyCmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of batches to list")
	historyCmd.Flags().BoolVar(&allDirs, "all", false, "List batches for every directory")

	historyCmd.AddCommand(newHistoryClearCommand(cctx))
	return historyCmd
}

func newHistoryClearCommand(cctx *commandContext) *cobra.Command {
	var allDirs bool

	cmd := &cobra.Command{
		Use:   "clear [directory]",
		Short: "Delete recorded batches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if !allDirs {
				resolved, err := resolveDirectory(args)
				if err != nil {
					return err
				}
				dir = resolved
			}
			out := cmd.OutOrStdout()

			store, err := cctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context(), dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Cleared %s.\n", countNoun(int(removed), "batch", "batches"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&allDirs, "all", false, "Clear batches for every directory")
	return cmd
}
