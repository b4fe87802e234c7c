package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStatusCommandShowsPendingFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedDir(t, "a.jpg", "d.png", "c.pdf", "b.unknownext")

	out, _, err := runCLI(t, []string{"status", dir}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}

	requireContains(t, out, "Status for "+dir)
	requireContains(t, out, "Target directory:")
	requireContains(t, out, "[OK] "+dir+" (read/write ok)")
	requireContains(t, out, "Category rules:")
	requireContains(t, out, "built-in defaults")
	requireContains(t, out, "Images")
	requireContains(t, out, "Documents")
	requireContains(t, out, "3 files pending organization.")
	requireContains(t, out, "No batches recorded.")
}

func TestStatusCommandAfterOrganize(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedDir(t, "a.jpg", "b.unknownext")

	if _, _, err := runCLI(t, []string{"organize", dir}, env.configPath); err != nil {
		t.Fatalf("organize: %v", err)
	}

	out, _, err := runCLI(t, []string{"status", dir}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "No files pending organization.")
	requireContains(t, out, "Last batch: 1 moved, 1 skipped, 0 errors")
	requireNotContains(t, out, "[undone]")
}

func TestStatusCommandMarksUndoneBatch(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedDir(t, "a.jpg")

	if _, _, err := runCLI(t, []string{"organize", dir}, env.configPath); err != nil {
		t.Fatalf("organize: %v", err)
	}
	if _, _, err := runCLI(t, []string{"undo", dir}, env.configPath); err != nil {
		t.Fatalf("undo: %v", err)
	}

	out, _, err := runCLI(t, []string{"status", dir}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "[undone]")
}

func TestStatusCommandMissingDirectory(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := filepath.Join(t.TempDir(), "gone")

	out, _, err := runCLI(t, []string{"status", dir}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "[ERROR] "+dir+" (error: does not exist)")
	requireNotContains(t, out, "pending organization")
}

func TestStatusCommandReportsMalformedRules(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedDir(t, "a.jpg")
	if err := os.WriteFile(filepath.Join(dir, "sortd.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"status", dir}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "malformed, defaults in effect")
}
