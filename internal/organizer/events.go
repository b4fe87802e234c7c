package organizer

// EventKind identifies what happened to one file or directory.
type EventKind string

const (
	EventMoved         EventKind = "moved"
	EventWouldMove     EventKind = "would_move"
	EventSkipped       EventKind = "skipped"
	EventMoveFailed    EventKind = "move_failed"
	EventRestored      EventKind = "restored"
	EventRestoreFailed EventKind = "restore_failed"
	EventRemovedDir    EventKind = "removed_dir"
)

// Event describes one engine decision during a batch, an undo, or a cleanup
// pass. Name is the file's base name, or the category name for
// EventRemovedDir. Destination is set where a target path exists:
// "<Category>/<name>" for moves, the restored original path for undo.
type Event struct {
	Kind        EventKind
	Name        string
	Category    string
	Destination string
	Err         error
}

// Reporter receives engine events as they happen. Implementations drive
// user-facing progress output; the engine itself never prints. A nil
// Reporter silently drops events.
type Reporter interface {
	Event(Event)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(Event)

// Event calls f.
func (f ReporterFunc) Event(e Event) { f(e) }

func (o *Organizer) notify(e Event) {
	if o.reporter == nil {
		return
	}
	o.reporter.Event(e)
}
