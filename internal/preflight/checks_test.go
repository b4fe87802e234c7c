package preflight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sortd/internal/preflight"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	res := preflight.CheckDirectoryAccess("Target directory", dir)
	if !res.Passed {
		t.Fatalf("expected pass for writable directory: %+v", res)
	}
	if !strings.Contains(res.Detail, "read/write ok") {
		t.Fatalf("unexpected detail: %s", res.Detail)
	}

	res = preflight.CheckDirectoryAccess("Target directory", filepath.Join(dir, "missing"))
	if res.Passed || !strings.Contains(res.Detail, "does not exist") {
		t.Fatalf("expected missing-directory failure: %+v", res)
	}

	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	res = preflight.CheckDirectoryAccess("Target directory", file)
	if res.Passed || !strings.Contains(res.Detail, "is not a directory") {
		t.Fatalf("expected non-directory failure: %+v", res)
	}
}

func TestCheckRules(t *testing.T) {
	dir := t.TempDir()

	res := preflight.CheckRules(dir, "sortd.json")
	if !res.Passed || res.Detail != "built-in defaults" {
		t.Fatalf("expected defaults for missing rules file: %+v", res)
	}

	path := filepath.Join(dir, "sortd.json")
	if err := os.WriteFile(path, []byte(`{"Ebooks": [".epub"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	res = preflight.CheckRules(dir, "sortd.json")
	if !res.Passed || res.Detail != path {
		t.Fatalf("expected valid rules file: %+v", res)
	}

	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	res = preflight.CheckRules(dir, "sortd.json")
	if res.Passed || !strings.Contains(res.Detail, "malformed") {
		t.Fatalf("expected malformed rules failure: %+v", res)
	}
}

func TestRunAllCoversDirectoryAndRules(t *testing.T) {
	dir := t.TempDir()

	results := preflight.RunAll(dir, "sortd.json")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if !res.Passed {
			t.Fatalf("expected all checks to pass: %+v", res)
		}
	}
}
