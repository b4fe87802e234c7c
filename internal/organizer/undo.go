package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sortd/internal/fileutil"
	"sortd/internal/logging"
)

// Undo replays the journal in reverse completion order, moving every
// destination back to its original path. Entries that fail, because the
// file is gone or the original path is occupied again, are recorded and
// skipped; the remaining entries are still restored. The journal is
// consumed by the attempt: a second Undo reports zero without touching the
// filesystem, so a partially failed undo can never double-restore.
func (o *Organizer) Undo(ctx context.Context) (int, error) {
	if len(o.journal) == 0 {
		return 0, nil
	}

	logger := logging.WithContext(ctx, o.logger).With(logging.String(logging.FieldDirectory, o.dir))
	logger.Info("undoing batch", logging.Int("entries", len(o.journal)))

	restored := 0
	var ctxErr error
	for i := len(o.journal) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		rec := o.journal[i]
		name := filepath.Base(rec.Destination)
		if err := restoreOne(rec); err != nil {
			o.errs = append(o.errs, err.Error())
			o.notify(Event{Kind: EventRestoreFailed, Name: name, Err: err})
			logger.Warn("restore failed", logging.String(logging.FieldFile, name), logging.Error(err))
			continue
		}
		restored++
		o.notify(Event{Kind: EventRestored, Name: name, Destination: rec.Source})
		logger.Debug("restored file", logging.String(logging.FieldFile, name))
	}

	// The journal is spent even when entries failed, so a retry can never
	// restore the same move twice.
	o.journal = nil

	logger.Info("undo complete", logging.Int("restored", restored))
	return restored, ctxErr
}

// restoreOne moves a journal entry's destination back to its source. It
// refuses to overwrite: a file sitting at the original path fails the entry
// instead of being replaced.
func restoreOne(rec MoveRecord) error {
	name := filepath.Base(rec.Destination)
	if _, err := os.Lstat(rec.Source); err == nil {
		return fmt.Errorf("restore %s: original path %s already exists", name, rec.Source)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("restore %s: probe original path: %w", name, err)
	}
	if err := fileutil.MoveFile(rec.Destination, rec.Source); err != nil {
		return fmt.Errorf("restore %s to %s: %w", name, rec.Source, err)
	}
	return nil
}
