package categories

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortd.json")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if m.Len() != 9 {
		t.Fatalf("expected default table, got %d categories", m.Len())
	}
	if category, ok := m.Match("photo.jpg"); !ok || category != "Images" {
		t.Fatalf("default table broken: got %q, %v", category, ok)
	}
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortd.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err == nil {
		t.Fatal("expected ConfigError for malformed rules")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	if cfgErr.Path != path {
		t.Fatalf("unexpected path in error: %q", cfgErr.Path)
	}
	if m == nil || m.Len() != 9 {
		t.Fatal("expected default table as fallback")
	}
}

func TestLoadUnreadablePathFallsBack(t *testing.T) {
	// A directory at the rules path fails the read without being missing.
	dir := t.TempDir()
	path := filepath.Join(dir, "sortd.json")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	if m == nil || m.Len() != 9 {
		t.Fatal("expected default table as fallback")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortd.json")

	m := New()
	m.Add("Zebra", ".z")
	m.Add("Apple", ".app", ".ap")

	if err := Save(path, m); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.HasSuffix(text, "\n") {
		t.Fatal("expected trailing newline")
	}
	if !strings.Contains(text, "  \"Zebra\"") {
		t.Fatalf("expected indented output, got: %s", text)
	}
	if strings.Index(text, "Zebra") > strings.Index(text, "Apple") {
		t.Fatalf("expected document order preserved, got: %s", text)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	names := loaded.Names()
	if len(names) != 2 || names[0] != "Zebra" || names[1] != "Apple" {
		t.Fatalf("unexpected categories after round trip: %v", names)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sortd.json")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "sortd.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("unexpected files after save: %v", names)
	}
}
