package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"sortd/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "sortd", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.Organizer.RulesFile != "sortd.json" {
		t.Fatalf("unexpected rules file: %q", cfg.Organizer.RulesFile)
	}
	if cfg.Organizer.BatchLog != "sortd.log" {
		t.Fatalf("unexpected batch log: %q", cfg.Organizer.BatchLog)
	}
	if cfg.Organizer.LockFile != ".sortd.lock" {
		t.Fatalf("unexpected lock file: %q", cfg.Organizer.LockFile)
	}
	if !cfg.Organizer.KeepHistory {
		t.Fatal("expected history recording enabled by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.LogDir)
	if err != nil {
		t.Fatalf("expected log directory %q to exist: %v", cfg.Paths.LogDir, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be directory", cfg.Paths.LogDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "sortd.toml")

	type payload struct {
		Paths struct {
			LogDir string `toml:"log_dir"`
		} `toml:"paths"`
		Organizer struct {
			RulesFile   string `toml:"rules_file"`
			KeepHistory bool   `toml:"keep_history"`
		} `toml:"organizer"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.LogDir = filepath.Join(tempDir, "logs")
	custom.Organizer.RulesFile = "rules.json"
	custom.Organizer.KeepHistory = false
	custom.Logging.Level = "DEBUG"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.LogDir != custom.Paths.LogDir {
		t.Fatalf("expected log dir from file, got %q", cfg.Paths.LogDir)
	}
	if cfg.Organizer.RulesFile != "rules.json" {
		t.Fatalf("expected rules file override, got %q", cfg.Organizer.RulesFile)
	}
	if cfg.Organizer.KeepHistory {
		t.Fatal("expected keep_history disabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level normalized to debug, got %q", cfg.Logging.Level)
	}
	if cfg.Organizer.BatchLog != "sortd.log" {
		t.Fatalf("expected batch log default to survive partial config, got %q", cfg.Organizer.BatchLog)
	}
}

func TestReservedNamesCoverPerDirectoryFiles(t *testing.T) {
	cfg := config.Default()
	names := cfg.ReservedNames()
	want := []string{"sortd.json", "sortd.log", ".sortd.lock"}
	if len(names) != len(want) {
		t.Fatalf("unexpected reserved names: %v", names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("reserved name %d: got %q want %q", i, names[i], name)
		}
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "rules_file") {
		t.Fatalf("sample config missing organizer keys: %s", contents)
	}

	// Validate it decodes and matches the repository defaults.
	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Organizer.RulesFile != "sortd.json" {
		t.Fatalf("sample rules file drifted from default: %q", cfg.Organizer.RulesFile)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("sample logging format drifted from default: %q", cfg.Logging.Format)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Organizer.RulesFile = "nested/rules.json"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for rules file with path separator")
	}

	cfg = config.Default()
	cfg.Organizer.BatchLog = cfg.Organizer.RulesFile
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for colliding per-directory names")
	}

	cfg = config.Default()
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestValidateAggregatesProblems(t *testing.T) {
	cfg := config.Default()
	cfg.Organizer.LockFile = "locks/sortd"
	cfg.Logging.Format = "yaml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "organizer.lock_file") {
		t.Fatalf("expected lock file problem in %q", msg)
	}
	if !strings.Contains(msg, "logging.format") {
		t.Fatalf("expected format problem in %q", msg)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sortd.toml")
	if err := os.WriteFile(configPath, []byte("[paths\nlog_dir = "), 0o644); err != nil {
		t.Fatalf("write malformed config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected parse error for malformed config")
	}
}
