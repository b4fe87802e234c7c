package main

import (
	"fmt"
	"io"
	"path/filepath"

	"sortd/internal/organizer"
)

// printReporter renders engine events as per-file console lines.
type printReporter struct {
	out io.Writer
}

func (r printReporter) Event(e organizer.Event) {
	switch e.Kind {
	case organizer.EventMoved:
		fmt.Fprintf(r.out, "Moved: %s -> %s/\n", e.Name, e.Category)
	case organizer.EventWouldMove:
		fmt.Fprintf(r.out, "Would move: %s -> %s/\n", e.Name, e.Category)
	case organizer.EventSkipped:
		fmt.Fprintf(r.out, "Skipping %s (unknown file type)\n", e.Name)
	case organizer.EventMoveFailed:
		fmt.Fprintf(r.out, "Failed: %s (%v)\n", e.Name, e.Err)
	case organizer.EventRestored:
		// The restored name differs when the move had resolved a collision.
		if original := filepath.Base(e.Destination); original != e.Name {
			fmt.Fprintf(r.out, "Restored: %s -> %s\n", e.Name, original)
		} else {
			fmt.Fprintf(r.out, "Restored: %s\n", e.Name)
		}
	case organizer.EventRestoreFailed:
		fmt.Fprintf(r.out, "Failed to restore %s: %v\n", e.Name, e.Err)
	case organizer.EventRemovedDir:
		fmt.Fprintf(r.out, "Removed empty directory: %s\n", e.Name)
	}
}

// newReporter returns nil when quiet, which drops per-file lines while
// keeping command summaries.
func newReporter(out io.Writer, quiet bool) organizer.Reporter {
	if quiet {
		return nil
	}
	return printReporter{out: out}
}
