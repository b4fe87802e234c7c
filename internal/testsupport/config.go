package testsupport

import (
	"path/filepath"
	"testing"

	"sortd/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose log directory lives inside a unique
// temp directory per test. It defaults the remaining fields and applies any
// provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	for _, opt := range opts {
		opt(&cfgVal)
	}

	if err := cfgVal.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfgVal
}

// WithKeepHistory toggles history recording on the test config.
func WithKeepHistory(keep bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organizer.KeepHistory = keep
	}
}

// WithRulesFile overrides the per-directory rules file name.
func WithRulesFile(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organizer.RulesFile = name
	}
}
