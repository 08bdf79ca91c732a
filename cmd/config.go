package cmd

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

const (
	defaultLogLevel      = slog.LevelInfo
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// Logs never go to stdout, which carries the issues. They go to stderr unless
// the engine config names a log file, which is then rotated by lumberjack.
// The returned closer releases the log file, if any.
func configureLogger(cfg m.EngineConfig, stderr io.Writer) io.Closer {
	var logLevel slog.Level
	if cfg.Debug {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(cfg.LogLevel, defaultLogLevel)
	}

	var (
		logWriter io.Writer = stderr
		closer    io.Closer = nopCloser{}
	)

	if strings.TrimSpace(cfg.LogFile) != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    defaultLogMaxSize,
			MaxBackups: defaultLogMaxBackups,
			MaxAge:     defaultLogMaxAge,
			Compress:   defaultLogCompress,
		}
		logWriter = rotating
		closer = rotating
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	return closer
}
