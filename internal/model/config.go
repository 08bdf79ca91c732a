package model

// IncludePaths are mount-prefixed paths that gate which records are emitted.
type IncludePaths []string

// EngineConfig is the parsed engine configuration file.
type EngineConfig struct {
	IncludePaths IncludePaths
	// Debug lowers the log level to debug.
	Debug bool
	// LogLevel is a slog level name or number; Debug takes precedence.
	LogLevel string
	// LogFile, when set, receives the logs instead of stderr.
	LogFile string
	// SkipMalformed logs and skips malformed records instead of aborting.
	SkipMalformed bool
}

// DefaultEngineConfig is used when no configuration file exists.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		IncludePaths: IncludePaths{MountPrefix},
	}
}
