// Package history persists organize batches to SQLite so they can be
// undone and inspected after the process that performed them has exited.
//
// Each recorded batch carries the summary counters shown by `sortd history`
// plus the full move list in journal order, which is what primes an undo.
// The database lives next to the application logs, not in the organized
// directory, so organizing never has to skip over it.
package history
