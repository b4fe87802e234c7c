package categories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ConfigError reports a rules file that exists but could not be used.
// Callers receive the default table alongside it and decide whether to warn.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rules file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads a rules file from disk. A missing file is a fresh start and
// returns the default table with no error. A file that exists but cannot be
// read or parsed also returns the default table, together with a
// *ConfigError describing the problem.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), &ConfigError{Path: path, Err: err}
	}

	m := New()
	if err := json.Unmarshal(data, m); err != nil {
		return Default(), &ConfigError{Path: path, Err: err}
	}
	return m, nil
}

// Save writes the map to path as indented JSON ending in a newline. Key
// order in the document follows the match order. The write goes through a
// temp file so a crash never leaves a half-written rules file behind.
func Save(path string, m *Map) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
