package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"sortd/internal/categories"
	"sortd/internal/config"
	"sortd/internal/history"
	"sortd/internal/logging"
	"sortd/internal/organizer"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerValue builds the application logger once. Commands still work when
// the log file cannot be opened; they just run without structured logs.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) openHistory() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

// loadRules reads the per-directory rules file, falling back to the default
// table with a warning when the file exists but cannot be used.
func (c *commandContext) loadRules(cmd *cobra.Command, dir string) (*categories.Map, string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, cfg.Organizer.RulesFile)
	rules, err := categories.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; using default categories\n", err)
	}
	return rules, path, nil
}

// newEngine builds an organizer for dir wired to the configured reserved
// names and batch log.
func (c *commandContext) newEngine(dir string, rules *categories.Map, reporter organizer.Reporter) (*organizer.Organizer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return organizer.New(dir, rules, organizer.Options{
		Logger:        c.loggerValue(),
		Reporter:      reporter,
		ReservedNames: cfg.ReservedNames(),
		BatchLogName:  cfg.Organizer.BatchLog,
	}), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
