package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"sortd/internal/categories"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckRules reports where the directory's category rules come from: the
// built-in table, a valid rules file, or a malformed file that organizing
// would fall back from.
func CheckRules(dir, rulesFile string) Result {
	const name = "Category rules"

	path := filepath.Join(dir, rulesFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Passed: true, Detail: "built-in defaults"}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if _, err := categories.Load(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (malformed, defaults in effect: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// RunAll executes the checks "sortd status" displays for a target directory.
func RunAll(dir, rulesFile string) []Result {
	return []Result{
		CheckDirectoryAccess("Target directory", dir),
		CheckRules(dir, rulesFile),
	}
}
