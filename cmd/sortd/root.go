package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	cctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "sortd",
		Short:         "Sort directory files into category folders by extension",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := cctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newOrganizeCommand(cctx))
	rootCmd.AddCommand(newUndoCommand(cctx))
	rootCmd.AddCommand(newCleanCommand(cctx))
	rootCmd.AddCommand(newStatusCommand(cctx))
	rootCmd.AddCommand(newHistoryCommand(cctx))
	rootCmd.AddCommand(newCategoriesCommand(cctx))
	rootCmd.AddCommand(newConfigCommand(cctx))

	return rootCmd
}
