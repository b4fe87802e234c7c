package lockfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sortd/internal/lockfile"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()

	lock, err := lockfile.Acquire(dir, ".sortd.lock")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if lock.Path() != filepath.Join(dir, ".sortd.lock") {
		t.Fatalf("unexpected lock path: %s", lock.Path())
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	// The lock file stays behind; only the flock state is released.
	if _, err := os.Stat(filepath.Join(dir, ".sortd.lock")); err != nil {
		t.Fatalf("expected lock file to remain: %v", err)
	}
}

func TestAcquireHeldLockFails(t *testing.T) {
	dir := t.TempDir()

	first, err := lockfile.Acquire(dir, ".sortd.lock")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer first.Release()

	_, err = lockfile.Acquire(dir, ".sortd.lock")
	if !errors.Is(err, lockfile.ErrHeld) {
		t.Fatalf("expected ErrHeld, got %v", err)
	}
}

func TestReacquireAfterRelease(t *testing.T) {
	dir := t.TempDir()

	first, err := lockfile.Acquire(dir, ".sortd.lock")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	second, err := lockfile.Acquire(dir, ".sortd.lock")
	if err != nil {
		t.Fatalf("expected reacquire to succeed: %v", err)
	}
	if err := second.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
}

func TestReleaseNilLock(t *testing.T) {
	var lock *lockfile.Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("nil release should be a no-op: %v", err)
	}
	if lock.Path() != "" {
		t.Fatal("nil lock should have empty path")
	}
}
