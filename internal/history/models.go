package history

import "time"

// Batch summarizes one recorded organize run over a single directory.
type Batch struct {
	ID        int64
	BatchID   string
	Directory string
	Moved     int
	Skipped   int
	Errors    int
	Undone    bool
	CreatedAt time.Time
}

// Move is one relocation within a batch. Seq preserves journal order so an
// undo can replay the batch backwards.
type Move struct {
	ID          int64
	BatchID     string
	Seq         int
	Source      string
	Destination string
	Size        int64
}
