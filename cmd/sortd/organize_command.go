package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sortd/internal/history"
	"sortd/internal/lockfile"
	"sortd/internal/logging"
	"sortd/internal/organizer"
)

func newOrganizeCommand(cctx *commandContext) *cobra.Command {
	var dryRun bool
	var noHistory bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "organize [directory]",
		Short: "Sort files into category folders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			dir, err := resolveDirectory(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			rules, _, err := cctx.loadRules(cmd, dir)
			if err != nil {
				return err
			}
			eng, err := cctx.newEngine(dir, rules, newReporter(out, quiet))
			if err != nil {
				return err
			}

			batchID := uuid.NewString()
			ctx := logging.WithBatchID(cmd.Context(), batchID)

			if !dryRun {
				lock, err := lockfile.Acquire(dir, cfg.Organizer.LockFile)
				if err != nil {
					return err
				}
				defer lock.Release()
				fmt.Fprintf(out, "Organizing files in: %s\n", dir)
			} else {
				fmt.Fprintf(out, "DRY RUN: Organizing files in: %s\n", dir)
			}

			stats, orgErr := eng.Organize(ctx, dryRun)

			// Record even an interrupted batch so its completed moves stay
			// undoable.
			if !dryRun && !noHistory && cfg.Organizer.KeepHistory {
				recordBatch(cmd, cctx, batchID, eng, stats)
			}

			if orgErr != nil {
				return orgErr
			}

			if stats == (organizer.Stats{}) {
				fmt.Fprintln(out, "No files to organize.")
				return nil
			}

			printSummary(out, eng, stats, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview moves without touching files")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this batch for undo")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file output")
	return cmd
}

// recordBatch persists the journal for a later undo. Failures warn instead
// of failing the command: the files are already organized at this point.
func recordBatch(cmd *cobra.Command, cctx *commandContext, batchID string, eng *organizer.Organizer, stats organizer.Stats) {
	journal := eng.Journal()
	if len(journal) == 0 {
		return
	}
	store, err := cctx.openHistory()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: batch not recorded: %v\n", err)
		return
	}
	defer store.Close()

	moves := make([]history.Move, len(journal))
	for i, rec := range journal {
		moves[i] = history.Move{Source: rec.Source, Destination: rec.Destination, Size: rec.Size}
	}
	batch := history.Batch{
		BatchID:   batchID,
		Directory: eng.Dir(),
		Moved:     stats.Moved,
		Skipped:   stats.Skipped,
		Errors:    stats.Errors,
	}
	// Recording must outlive a cancelled batch context.
	if err := store.RecordBatch(context.Background(), batch, moves); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: batch not recorded: %v\n", err)
	}
}

func printSummary(out io.Writer, eng *organizer.Organizer, stats organizer.Stats, dryRun bool) {
	headers := []string{"Moved", "Skipped", "Errors"}
	row := []string{strconv.Itoa(stats.Moved), strconv.Itoa(stats.Skipped), strconv.Itoa(stats.Errors)}
	if !dryRun {
		var bytesMoved int64
		for _, rec := range eng.Journal() {
			bytesMoved += rec.Size
		}
		headers = append(headers, "Data")
		row = append(row, humanize.IBytes(uint64(bytesMoved)))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(headers, [][]string{row}, 0, 1, 2, 3))

	if errs := eng.Errors(); len(errs) > 0 {
		fmt.Fprintln(out, "Errors:")
		for _, msg := range errs {
			fmt.Fprintf(out, "  %s\n", msg)
		}
	}
	if dryRun {
		fmt.Fprintln(out, "This was a dry run - no files were actually moved.")
	}
}
