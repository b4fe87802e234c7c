package organizer

import (
	"context"
	"os"
	"path/filepath"

	"sortd/internal/logging"
)

// CleanEmpty removes category directories that exist and hold nothing,
// typically after an undo returned their contents. Directories that are
// missing, non-empty, or fail to list are skipped without error.
func (o *Organizer) CleanEmpty(ctx context.Context) (int, error) {
	if err := o.checkDir(); err != nil {
		return 0, err
	}

	logger := logging.WithContext(ctx, o.logger).With(logging.String(logging.FieldDirectory, o.dir))

	removed := 0
	for _, category := range o.rules.Names() {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		dir := filepath.Join(o.dir, category)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			logger.Warn("remove empty directory failed",
				logging.String(logging.FieldCategory, category),
				logging.Error(err),
			)
			continue
		}
		removed++
		o.notify(Event{Kind: EventRemovedDir, Name: category})
		logger.Debug("removed empty directory", logging.String(logging.FieldCategory, category))
	}

	logger.Info("cleanup complete", logging.Int("removed", removed))
	return removed, nil
}
