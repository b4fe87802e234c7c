// Package logging assembles the structured slog loggers used across sortd.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so engine code can tag log
// lines with batch identifiers and target directories. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing.
package logging
