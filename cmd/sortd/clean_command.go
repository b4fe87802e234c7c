package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCleanCommand(cctx *commandContext) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "clean [directory]",
		Short: "Remove empty category folders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cctx.ensureConfig(); err != nil {
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

			removed, err := eng.CleanEmpty(cmd.Context())
			if err != nil {
				return err
			}
			if removed == 0 {
				fmt.Fprintln(out, "No empty category directories.")
				return nil
			}
			fmt.Fprintf(out, "Removed %s.\n", countNoun(removed, "empty directory", "empty directories"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-directory output")
	return cmd
}
