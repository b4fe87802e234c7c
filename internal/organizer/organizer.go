package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sortd/internal/batchlog"
	"sortd/internal/categories"
	"sortd/internal/fileutil"
	"sortd/internal/logging"
)

// systemNames are skipped during enumeration regardless of configuration,
// compared lowercased.
var systemNames = map[string]struct{}{
	"desktop.ini": {},
	"thumbs.db":   {},
	".ds_store":   {},
}

// MoveRecord is one completed relocation: where the file was and where it
// ended up. Records enter the journal only after the move fully succeeded.
type MoveRecord struct {
	Source      string
	Destination string
	Size        int64
}

// Stats counts the outcomes of one batch. In a dry run Moved counts the
// files that would have moved.
type Stats struct {
	Moved   int
	Skipped int
	Errors  int
}

// Options configures an Organizer.
type Options struct {
	// Logger receives structured progress and warnings. Nil discards them.
	Logger *slog.Logger
	// Reporter receives per-file events. Nil drops them.
	Reporter Reporter
	// ReservedNames lists file names (compared lowercased) the organizer
	// must leave in place, typically the rules file, the batch log, and
	// the lock file. OS metadata files are always reserved.
	ReservedNames []string
	// BatchLogName names the append-only log written into the target
	// directory after each real batch. Empty disables the log.
	BatchLogName string
}

// Organizer sorts one directory. It owns the category rules, the undo
// journal, and the error list of the current batch. Not safe for concurrent
// use.
type Organizer struct {
	dir      string
	rules    *categories.Map
	logger   *slog.Logger
	reporter Reporter
	reserved map[string]struct{}
	batchLog string

	journal []MoveRecord
	errs    []string
}

// New returns an Organizer for dir. A nil rules map selects the built-in
// category table.
func New(dir string, rules *categories.Map, opts Options) *Organizer {
	if rules == nil {
		rules = categories.Default()
	}
	reserved := make(map[string]struct{}, len(systemNames)+len(opts.ReservedNames))
	for name := range systemNames {
		reserved[name] = struct{}{}
	}
	for _, name := range opts.ReservedNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			reserved[name] = struct{}{}
		}
	}
	return &Organizer{
		dir:      dir,
		rules:    rules,
		logger:   logging.NewComponentLogger(opts.Logger, "organizer"),
		reporter: opts.Reporter,
		reserved: reserved,
		batchLog: strings.TrimSpace(opts.BatchLogName),
	}
}

// Dir returns the target directory.
func (o *Organizer) Dir() string { return o.dir }

// Rules returns the category rules the organizer classifies with.
func (o *Organizer) Rules() *categories.Map { return o.rules }

// Journal returns a copy of the move records of the most recent batch, in
// completion order.
func (o *Organizer) Journal() []MoveRecord {
	records := make([]MoveRecord, len(o.journal))
	copy(records, o.journal)
	return records
}

// SetJournal replaces the journal, discarding any prior entries. Callers
// use it to prime an undo from persisted history.
func (o *Organizer) SetJournal(records []MoveRecord) {
	o.journal = make([]MoveRecord, len(records))
	copy(o.journal, records)
}

// Errors returns the per-file failure descriptions accumulated by the most
// recent batch or undo.
func (o *Organizer) Errors() []string {
	errs := make([]string, len(o.errs))
	copy(errs, o.errs)
	return errs
}

// Organize runs one batch over the direct children of the target directory.
// Regular files are classified by extension and moved into
// <dir>/<Category>/; files without a matching category count as skipped.
// When dryRun is set every decision is reported but nothing on disk
// changes.
//
// The batch starts by discarding the previous journal and error list.
// Per-file failures are isolated: they are counted and recorded, and the
// batch moves on. Only a missing target directory, an unreadable listing,
// or context cancellation aborts; on cancellation the stats and journal
// reflect the work completed so far.
func (o *Organizer) Organize(ctx context.Context, dryRun bool) (Stats, error) {
	var stats Stats

	if err := o.checkDir(); err != nil {
		return stats, err
	}

	o.journal = nil
	o.errs = nil

	files, err := o.eligibleFiles()
	if err != nil {
		return stats, err
	}

	logger := logging.WithContext(ctx, o.logger).With(
		logging.String(logging.FieldDirectory, o.dir),
		logging.Bool(logging.FieldDryRun, dryRun),
	)

	if len(files) == 0 {
		logger.Info("nothing to organize")
		return stats, nil
	}
	logger.Info("organizing directory", logging.Int("files", len(files)))

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			logger.Warn("batch interrupted", logging.Int("moved", stats.Moved))
			return stats, err
		}

		category, ok := o.rules.Match(name)
		if !ok {
			stats.Skipped++
			o.notify(Event{Kind: EventSkipped, Name: name})
			logger.Debug("skipping unclassified file", logging.String(logging.FieldFile, name))
			continue
		}

		if dryRun {
			stats.Moved++
			o.notify(Event{
				Kind:        EventWouldMove,
				Name:        name,
				Category:    category,
				Destination: filepath.Join(category, name),
			})
			logger.Debug("would move file",
				logging.String(logging.FieldFile, name),
				logging.String(logging.FieldCategory, category),
			)
			continue
		}

		record, err := o.moveOne(name, category)
		if err != nil {
			stats.Errors++
			o.errs = append(o.errs, err.Error())
			o.notify(Event{Kind: EventMoveFailed, Name: name, Category: category, Err: err})
			logger.Warn("move failed", logging.String(logging.FieldFile, name), logging.Error(err))
			continue
		}
		o.journal = append(o.journal, record)
		stats.Moved++
		o.notify(Event{
			Kind:        EventMoved,
			Name:        name,
			Category:    category,
			Destination: filepath.Join(category, filepath.Base(record.Destination)),
		})
		logger.Info("moved file",
			logging.String(logging.FieldFile, name),
			logging.String(logging.FieldCategory, category),
		)
	}

	if !dryRun {
		o.appendBatchLog(logger)
	}

	logger.Info("batch complete",
		logging.Int("moved", stats.Moved),
		logging.Int("skipped", stats.Skipped),
		logging.Int("errors", stats.Errors),
	)
	return stats, nil
}

// Pending classifies the directory without touching it and reports how many
// files would land in each category.
func (o *Organizer) Pending(ctx context.Context) (map[string]int, error) {
	if err := o.checkDir(); err != nil {
		return nil, err
	}
	files, err := o.eligibleFiles()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if category, ok := o.rules.Match(name); ok {
			counts[category]++
		}
	}
	return counts, nil
}

func (o *Organizer) checkDir() error {
	info, err := os.Stat(o.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Dir: o.dir}
		}
		return fmt.Errorf("inspect target directory: %w", err)
	}
	if !info.IsDir() {
		return &NotFoundError{Dir: o.dir}
	}
	return nil
}

// eligibleFiles lists the regular, non-reserved children of the target
// directory in enumeration order.
func (o *Organizer) eligibleFiles() ([]string, error) {
	entries, err := os.ReadDir(o.dir)
	if err != nil {
		return nil, fmt.Errorf("read target directory: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if _, skip := o.reserved[strings.ToLower(name)]; skip {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

// moveOne relocates a single classified file. The caller appends the
// returned record to the journal only after a fully successful move.
func (o *Organizer) moveOne(name, category string) (MoveRecord, error) {
	categoryDir := filepath.Join(o.dir, category)
	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return MoveRecord{}, fmt.Errorf("create directory %s: %w", categoryDir, err)
	}

	destination, err := ResolveDestination(categoryDir, name)
	if err != nil {
		return MoveRecord{}, fmt.Errorf("resolve destination for %s: %w", name, err)
	}

	source := filepath.Join(o.dir, name)
	var size int64
	if info, err := os.Stat(source); err == nil {
		size = info.Size()
	}

	if err := fileutil.MoveFile(source, destination); err != nil {
		return MoveRecord{}, fmt.Errorf("move %s to %s: %w", name, destination, err)
	}
	return MoveRecord{Source: source, Destination: destination, Size: size}, nil
}

func (o *Organizer) appendBatchLog(logger *slog.Logger) {
	if o.batchLog == "" {
		return
	}
	entry := batchlog.Entry{
		Timestamp: time.Now(),
		Directory: o.dir,
		Errors:    o.Errors(),
	}
	for _, rec := range o.journal {
		entry.Moves = append(entry.Moves, batchlog.Move{
			Name:        filepath.Base(rec.Source),
			Destination: filepath.Join(filepath.Base(filepath.Dir(rec.Destination)), filepath.Base(rec.Destination)),
		})
	}
	path := filepath.Join(o.dir, o.batchLog)
	if err := batchlog.Append(path, entry); err != nil {
		logger.Warn("batch log write failed", logging.Error(err))
	}
}
