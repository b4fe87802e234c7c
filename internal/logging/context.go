package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldDirectory is the standardized structured logging key for the target directory.
	FieldDirectory = "directory"
	// FieldBatchID is the standardized structured logging key for batch identifiers.
	FieldBatchID = "batch_id"
	// FieldCategory is the standardized structured logging key for category names.
	FieldCategory = "category"
	// FieldFile is the standardized structured logging key for file names.
	FieldFile = "file"
	// FieldDryRun marks log lines emitted during preview runs.
	FieldDryRun = "dry_run"
	// FieldError is the standardized structured logging key for error values.
	FieldError = "error"
)

type contextKey string

const (
	batchIDKey   contextKey = "batch_id"
	directoryKey contextKey = "directory"
)

// WithBatchID stores a batch identifier in the context for log correlation.
func WithBatchID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, batchIDKey, id)
}

// BatchIDFromContext reports the batch identifier stored in the context, if any.
func BatchIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(batchIDKey).(string)
	return id, ok && id != ""
}

// WithDirectory stores the target directory in the context for log correlation.
func WithDirectory(ctx context.Context, dir string) context.Context {
	if dir == "" {
		return ctx
	}
	return context.WithValue(ctx, directoryKey, dir)
}

// DirectoryFromContext reports the target directory stored in the context, if any.
func DirectoryFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	dir, ok := ctx.Value(directoryKey).(string)
	return dir, ok && dir != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := BatchIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldBatchID, id))
	}
	if dir, ok := DirectoryFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldDirectory, dir))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
