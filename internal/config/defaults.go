package config

const (
	defaultLogDir      = "~/.local/share/sortd/logs"
	defaultRulesFile   = "sortd.json"
	defaultBatchLog    = "sortd.log"
	defaultLockFile    = ".sortd.lock"
	defaultKeepHistory = true
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Organizer: Organizer{
			RulesFile:   defaultRulesFile,
			BatchLog:    defaultBatchLog,
			LockFile:    defaultLockFile,
			KeepHistory: defaultKeepHistory,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
