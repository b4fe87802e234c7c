// Package batchlog appends human-readable batch entries to the organization
// log kept inside each organized directory. The log is append-only and never
// read back; structured history lives in the history store.
package batchlog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Move is one relocated file within a batch.
type Move struct {
	Name        string
	Destination string
}

// Entry describes one organization batch.
type Entry struct {
	Timestamp time.Time
	Directory string
	Moves     []Move
	Errors    []string
}

// Append writes the entry to the log at path, creating the file if needed.
func Append(path string, entry Entry) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open batch log: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(entry.render()); err != nil {
		return fmt.Errorf("write batch log: %w", err)
	}
	return file.Close()
}

func (e Entry) render() string {
	var b strings.Builder
	b.WriteString("\n--- File Organization Log ---\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", e.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Directory: %s\n", e.Directory)
	fmt.Fprintf(&b, "Files moved: %d\n", len(e.Moves))
	if len(e.Moves) > 0 {
		b.WriteString("Moved files:\n")
		for _, mv := range e.Moves {
			fmt.Fprintf(&b, "  %s -> %s\n", mv.Name, mv.Destination)
		}
	}
	if len(e.Errors) > 0 {
		b.WriteString("Errors:\n")
		for _, line := range e.Errors {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	return b.String()
}
