package main

import (
	"fmt"
	"strings"

	"sortd/internal/config"
)

// resolveDirectory expands the optional positional directory argument,
// defaulting to the current working directory.
func resolveDirectory(args []string) (string, error) {
	dir := "."
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		dir = strings.TrimSpace(args[0])
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	return expanded, nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// countNoun renders "1 file" / "3 files" style phrases.
func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
