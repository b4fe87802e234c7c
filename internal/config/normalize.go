package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganizer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganizer() {
	c.Organizer.RulesFile = strings.TrimSpace(c.Organizer.RulesFile)
	if c.Organizer.RulesFile == "" {
		c.Organizer.RulesFile = defaultRulesFile
	}
	c.Organizer.BatchLog = strings.TrimSpace(c.Organizer.BatchLog)
	if c.Organizer.BatchLog == "" {
		c.Organizer.BatchLog = defaultBatchLog
	}
	c.Organizer.LockFile = strings.TrimSpace(c.Organizer.LockFile)
	if c.Organizer.LockFile == "" {
		c.Organizer.LockFile = defaultLockFile
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
