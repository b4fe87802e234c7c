package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"sortd/internal/preflight"
)

func newStatusCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [directory]",
		Short: "Show directory readiness, pending files, and the last batch",
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
			colorize := shouldColorize(out)

			fmt.Fprintf(out, "Status for %s\n\n", dir)

			ready := true
			for _, res := range preflight.RunAll(dir, cfg.Organizer.RulesFile) {
				fmt.Fprintln(out, renderCheck(res, colorize))
				if res.Name == "Target directory" && !res.Passed {
					ready = false
				}
			}
			fmt.Fprintln(out)
			if !ready {
				return nil
			}

			rules, _, err := cctx.loadRules(cmd, dir)
			if err != nil {
				return err
			}
			eng, err := cctx.newEngine(dir, rules, nil)
			if err != nil {
				return err
			}
			counts, err := eng.Pending(cmd.Context())
			if err != nil {
				return err
			}
			if len(counts) == 0 {
				fmt.Fprintln(out, "No files pending organization.")
			} else {
				rows := make([][]string, 0, len(counts))
				total := 0
				for _, category := range rules.Names() {
					if n := counts[category]; n > 0 {
						rows = append(rows, []string{category, strconv.Itoa(n)})
						total += n
					}
				}
				fmt.Fprintln(out, renderTable([]string{"Category", "Files"}, rows, 1))
				fmt.Fprintf(out, "%s pending organization.\n", countNoun(total, "file", "files"))
			}
			fmt.Fprintln(out)

			store, err := cctx.openHistory()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: history unavailable: %v\n", err)
				return nil
			}
			defer store.Close()

			recent, err := store.Recent(cmd.Context(), dir, 1)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				fmt.Fprintln(out, "No batches recorded.")
				return nil
			}
			last := recent[0]
			line := fmt.Sprintf("Last batch: %d moved, %d skipped, %d errors (%s)",
				last.Moved, last.Skipped, last.Errors, humanize.Time(last.CreatedAt))
			if last.Undone {
				line += " [undone]"
			}
			fmt.Fprintln(out, line)
			return nil
		},
	}
}
