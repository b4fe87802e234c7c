package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. All problems are reported in
// one pass so users can fix a config file in a single edit.
func (c *Config) Validate() error {
	var problems []error
	problems = append(problems, c.validateOrganizer()...)
	problems = append(problems, c.validateLogging()...)
	return errors.Join(problems...)
}

func (c *Config) validateOrganizer() []error {
	var problems []error
	names := map[string]string{
		"organizer.rules_file": c.Organizer.RulesFile,
		"organizer.batch_log":  c.Organizer.BatchLog,
		"organizer.lock_file":  c.Organizer.LockFile,
	}
	for key, name := range names {
		if name == "" {
			problems = append(problems, fmt.Errorf("%s must not be empty", key))
			continue
		}
		if strings.ContainsAny(name, `/\`) {
			problems = append(problems, fmt.Errorf("%s must be a bare file name, got %q", key, name))
		}
	}
	if c.Organizer.RulesFile != "" && c.Organizer.RulesFile == c.Organizer.BatchLog {
		problems = append(problems, errors.New("organizer.rules_file and organizer.batch_log must differ"))
	}
	if c.Organizer.RulesFile != "" && c.Organizer.RulesFile == c.Organizer.LockFile {
		problems = append(problems, errors.New("organizer.rules_file and organizer.lock_file must differ"))
	}
	if c.Organizer.BatchLog != "" && c.Organizer.BatchLog == c.Organizer.LockFile {
		problems = append(problems, errors.New("organizer.batch_log and organizer.lock_file must differ"))
	}
	return problems
}

func (c *Config) validateLogging() []error {
	var problems []error
	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level))
	}
	return problems
}
