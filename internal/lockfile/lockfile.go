// Package lockfile serializes mutating work on a directory with an
// advisory flock-based lock file kept inside that directory.
//
// Organize and undo take the lock; dry runs and read-only commands do not.
// The lock file itself stays on disk after release — flock state, not file
// existence, is what other processes observe — so it is also a reserved
// name the organizer never moves.
package lockfile

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld reports that another process holds the directory lock.
var ErrHeld = errors.New("another sortd process is organizing this directory")

// Lock is a held advisory lock.
type Lock struct {
	flock *flock.Flock
}

// Acquire takes the lock file name inside dir without blocking. It returns
// ErrHeld when another process owns the lock.
func Acquire(dir, name string) (*Lock, error) {
	path := filepath.Join(dir, name)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock file %s)", ErrHeld, path)
	}
	return &Lock{flock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil || l.flock == nil {
		return ""
	}
	return l.flock.Path()
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	return l.flock.Unlock()
}
