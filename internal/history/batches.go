package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const batchColumns = "id, batch_id, directory, moved, skipped, errors, undone, created_at"

// RecordBatch inserts a batch and its moves in one transaction. Moves take
// their sequence numbers from slice order. A zero CreatedAt is stamped with
// the current time.
func (s *Store) RecordBatch(ctx context.Context, batch Batch, moves []Move) error {
	if batch.BatchID == "" {
		return errors.New("batch id is required")
	}
	if batch.Directory == "" {
		return errors.New("directory is required")
	}
	createdAt := batch.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin batch tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO batches (batch_id, directory, moved, skipped, errors, undone, created_at)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			batch.BatchID,
			batch.Directory,
			batch.Moved,
			batch.Skipped,
			batch.Errors,
			boolToInt(batch.Undone),
			createdAt.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("insert batch: %w", err)
		}

		for i, mv := range moves {
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO moves (batch_id, seq, source, destination, size)
                 VALUES (?, ?, ?, ?, ?)`,
				batch.BatchID,
				i,
				mv.Source,
				mv.Destination,
				mv.Size,
			); err != nil {
				return fmt.Errorf("insert move %d: %w", i, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit batch: %w", err)
		}
		return nil
	})
}

// LastBatch returns the most recent batch for dir that has not been undone
// and actually moved files, or nil when no such batch exists.
func (s *Store) LastBatch(ctx context.Context, dir string) (*Batch, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+batchColumns+` FROM batches
         WHERE directory = ? AND undone = 0 AND moved > 0
         ORDER BY created_at DESC, id DESC LIMIT 1`,
		dir,
	)
	batch, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last batch: %w", err)
	}
	return batch, nil
}

// Moves returns the move list of a batch in journal order.
func (s *Store) Moves(ctx context.Context, batchID string) ([]Move, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, batch_id, seq, source, destination, size FROM moves
         WHERE batch_id = ? ORDER BY seq`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var mv Move
		if err := rows.Scan(&mv.ID, &mv.BatchID, &mv.Seq, &mv.Source, &mv.Destination, &mv.Size); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		moves = append(moves, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return moves, nil
}

// MarkUndone flags a batch so LastBatch skips it from now on.
func (s *Store) MarkUndone(ctx context.Context, batchID string) error {
	if err := s.execWithoutResultRetry(
		ctx,
		"UPDATE batches SET undone = 1 WHERE batch_id = ?",
		batchID,
	); err != nil {
		return fmt.Errorf("mark undone: %w", err)
	}
	return nil
}

// Recent returns the newest batches first, including undone ones. An empty
// dir matches every directory; a limit <= 0 defaults to 10.
func (s *Store) Recent(ctx context.Context, dir string, limit int) ([]*Batch, error) {
	if limit <= 0 {
		limit = 10
	}
	ctx = ensureContext(ctx)

	query := `SELECT ` + batchColumns + ` FROM batches`
	args := make([]any, 0, 2)
	if dir != "" {
		query += ` WHERE directory = ?`
		args = append(args, dir)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent batches: %w", err)
	}
	defer rows.Close()

	var batches []*Batch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return batches, nil
}

// Clear deletes recorded batches and, via cascade, their moves. An empty
// dir clears everything. It returns the number of batches removed.
func (s *Store) Clear(ctx context.Context, dir string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if dir == "" {
		res, err = s.execWithRetry(ctx, "DELETE FROM batches")
	} else {
		res, err = s.execWithRetry(ctx, "DELETE FROM batches WHERE directory = ?", dir)
	}
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}

func scanBatch(scanner interface{ Scan(dest ...any) error }) (*Batch, error) {
	var (
		batch      Batch
		undone     int64
		createdRaw string
	)
	if err := scanner.Scan(
		&batch.ID,
		&batch.BatchID,
		&batch.Directory,
		&batch.Moved,
		&batch.Skipped,
		&batch.Errors,
		&undone,
		&createdRaw,
	); err != nil {
		return nil, err
	}
	batch.Undone = undone != 0

	createdAt, err := parseTimestamp(createdRaw)
	if err != nil {
		return nil, err
	}
	batch.CreatedAt = createdAt
	return &batch, nil
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q", value)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
