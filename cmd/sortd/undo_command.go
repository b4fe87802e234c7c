package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sortd/internal/lockfile"
	"sortd/internal/logging"
	"sortd/internal/organizer"
)

func newUndoCommand(cctx *commandContext) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "undo [directory]",
		Short: "Move the files of the last batch back to where they were",
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

			store, err := cctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			batch, err := store.LastBatch(cmd.Context(), dir)
			if err != nil {
				return err
			}
			if batch == nil {
				fmt.Fprintln(out, "Nothing to undo.")
				return nil
			}
			moves, err := store.Moves(cmd.Context(), batch.BatchID)
			if err != nil {
				return err
			}

			lock, err := lockfile.Acquire(dir, cfg.Organizer.LockFile)
			if err != nil {
				return err
			}
			defer lock.Release()

			eng, err := cctx.newEngine(dir, nil, newReporter(out, quiet))
			if err != nil {
				return err
			}
			records := make([]organizer.MoveRecord, len(moves))
			for i, mv := range moves {
				records[i] = organizer.MoveRecord{
					Source:      mv.Source,
					Destination: mv.Destination,
					Size:        mv.Size,
				}
			}
			eng.SetJournal(records)

			ctx := logging.WithBatchID(cmd.Context(), batch.BatchID)
			restored, undoErr := eng.Undo(ctx)

			// The undo attempt consumes the batch even when entries failed;
			// marking must outlive a cancelled context.
			if err := store.MarkUndone(context.Background(), batch.BatchID); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: batch not marked undone: %v\n", err)
			}

			fmt.Fprintf(out, "Restored %s.\n", countNoun(restored, "file", "files"))
			if failed := len(moves) - restored; failed > 0 && undoErr == nil {
				fmt.Fprintf(out, "%s could not be restored.\n", countNoun(failed, "file", "files"))
			}
			return undoErr
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file output")
	return cmd
}
