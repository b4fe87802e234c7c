package organizer

import (
	"errors"
	"fmt"
)

// ErrNotFound tags failures caused by a missing or invalid target directory.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that the organize target does not exist or is not a
// directory. It aborts the invocation before any enumeration or moves.
type NotFoundError struct {
	Dir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("target directory %s does not exist or is not a directory", e.Dir)
}

// Unwrap lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
