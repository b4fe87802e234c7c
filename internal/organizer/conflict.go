package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDestination returns a path for name inside dir that did not exist
// at the time of the call. The first choice is dir/name; while that is
// taken, a numeric suffix goes before the extension: report.pdf becomes
// report_1.pdf, then report_2.pdf, and so on, unbounded.
//
// The existence probe and the move that follows are separate operations, so
// a concurrent writer can still claim the returned path first. Batches are
// single-user by contract; the advisory lock keeps other sortd processes
// out, and the residual window is accepted.
func ResolveDestination(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	taken, err := pathExists(candidate)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	if ext == name {
		// Hidden files such as .bashrc have no stem to preserve.
		ext = ""
	}
	stem := strings.TrimSuffix(name, ext)

	for counter := 1; ; counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		taken, err := pathExists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

func pathExists(path string) (bool, error) {
	if _, err := os.Lstat(path); err == nil {
		return true, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("probe %s: %w", path, err)
	}
	return false, nil
}
