package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sortd/internal/categories"
	"sortd/internal/config"
)

func newCategoriesCommand(cctx *commandContext) *cobra.Command {
	var dirFlag string

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category rules of a directory",
	}
	categoriesCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", ".", "Directory whose rules to manage")

	categoriesCmd.AddCommand(newCategoriesListCommand(cctx, &dirFlag))
	categoriesCmd.AddCommand(newCategoriesAddCommand(cctx, &dirFlag))
	categoriesCmd.AddCommand(newCategoriesRemoveCommand(cctx, &dirFlag))
	categoriesCmd.AddCommand(newCategoriesEditCommand(cctx, &dirFlag))
	return categoriesCmd
}

func rulesPathFor(cctx *commandContext, dirFlag *string) (string, error) {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return "", err
	}
	dir, err := config.ExpandPath(strings.TrimSpace(*dirFlag))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, cfg.Organizer.RulesFile), nil
}

func newCategoriesListCommand(cctx *commandContext, dirFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories and their extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rulesPathFor(cctx, dirFlag)
			if err != nil {
				return err
			}
			rules, err := categories.Load(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; showing default categories\n", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCategoryTable(rules))
			return nil
		},
	}
}

func newCategoriesAddCommand(cctx *commandContext, dirFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME EXT [EXT...]",
		Short: "Add a category or extend an existing one",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rulesPathFor(cctx, dirFlag)
			if err != nil {
				return err
			}
			rules, err := categories.Load(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; starting from default categories\n", err)
			}

			name := strings.TrimSpace(args[0])
			if name == "" {
				return errors.New("category name is required")
			}
			// New names get the same title casing the built-in table uses.
			if !rules.Has(name) {
				name = cases.Title(language.Und).String(name)
			}

			added := rules.Add(name, args[1:]...)
			if err := categories.Save(path, rules); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if added > 0 {
				fmt.Fprintf(out, "Added %s to %s.\n", countNoun(added, "extension", "extensions"), name)
			} else {
				fmt.Fprintf(out, "No new extensions for %s.\n", name)
			}
			fmt.Fprintf(out, "Rules saved to %s\n", path)
			return nil
		},
	}
}

func newCategoriesRemoveCommand(cctx *commandContext, dirFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rulesPathFor(cctx, dirFlag)
			if err != nil {
				return err
			}
			rules, err := categories.Load(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; starting from default categories\n", err)
			}

			out := cmd.OutOrStdout()
			name := strings.TrimSpace(args[0])
			if !rules.Remove(name) {
				fmt.Fprintf(out, "Category %q not found.\n", name)
				return nil
			}
			if err := categories.Save(path, rules); err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed category %q.\n", name)
			fmt.Fprintf(out, "Rules saved to %s\n", path)
			return nil
		},
	}
}

func newCategoriesEditCommand(cctx *commandContext, dirFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit categories through an interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rulesPathFor(cctx, dirFlag)
			if err != nil {
				return err
			}
			rules, err := categories.Load(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; editing default categories\n", err)
			}
			return runCategoriesEditor(cmd.InOrStdin(), cmd.OutOrStdout(), path, rules)
		},
	}
}

// runCategoriesEditor drives the interactive menu. Changes live in memory
// until the save option writes them; exiting with unsaved changes warns.
func runCategoriesEditor(in io.Reader, out io.Writer, path string, rules *categories.Map) error {
	scanner := bufio.NewScanner(in)
	dirty := false
	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Repeat("=", 50))
		fmt.Fprintln(out, "CATEGORY CONFIGURATION")
		fmt.Fprintln(out, strings.Repeat("=", 50))
		fmt.Fprintln(out, "1. List current categories")
		fmt.Fprintln(out, "2. Add new category")
		fmt.Fprintln(out, "3. Remove category")
		fmt.Fprintln(out, "4. Save configuration")
		fmt.Fprintln(out, "5. Exit configuration")

		choice, ok := prompt(scanner, out, "\nEnter your choice (1-5): ")
		if !ok {
			// End of input behaves like choosing exit.
			choice = "5"
		}

		switch choice {
		case "1":
			fmt.Fprintln(out, renderCategoryTable(rules))
		case "2":
			name, ok := prompt(scanner, out, "Enter category name: ")
			if !ok || name == "" {
				fmt.Fprintln(out, "Invalid category name.")
				continue
			}
			extsRaw, _ := prompt(scanner, out, "Enter file extensions (comma-separated, e.g., .pdf,.docx): ")
			exts := splitList(extsRaw)
			if len(exts) == 0 {
				fmt.Fprintln(out, "No valid extensions provided.")
				continue
			}
			if !rules.Has(name) {
				name = cases.Title(language.Und).String(name)
			}
			if added := rules.Add(name, exts...); added > 0 {
				dirty = true
				current, _ := rules.Extensions(name)
				fmt.Fprintf(out, "Added category %q with extensions: %s\n", name, strings.Join(current, ", "))
			} else {
				fmt.Fprintln(out, "No valid extensions provided.")
			}
		case "3":
			name, ok := prompt(scanner, out, "Enter category name to remove: ")
			if !ok || name == "" {
				fmt.Fprintln(out, "Invalid category name.")
				continue
			}
			if rules.Remove(name) {
				dirty = true
				fmt.Fprintf(out, "Removed category %q.\n", name)
			} else {
				fmt.Fprintf(out, "Category %q not found.\n", name)
			}
		case "4":
			if err := categories.Save(path, rules); err != nil {
				return err
			}
			dirty = false
			fmt.Fprintf(out, "Configuration saved to %s\n", path)
		case "5":
			if dirty {
				fmt.Fprintln(out, "Warning: unsaved changes were discarded.")
			}
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}

func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func renderCategoryTable(rules *categories.Map) string {
	rows := make([][]string, 0, rules.Len())
	for _, name := range rules.Names() {
		exts, _ := rules.Extensions(name)
		rows = append(rows, []string{name, strconv.Itoa(len(exts)), strings.Join(exts, ", ")})
	}
	return renderTable([]string{"Category", "Count", "Extensions"}, rows, 1)
}
