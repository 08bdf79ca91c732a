package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

// DefaultEngineConfigPath is where the Code Climate engine mounts the configuration.
// The file is JSON despite its extension.
const DefaultEngineConfigPath = "/config.js"

const (
	includePathsKey  = "include_paths"
	debugKey         = "debug"
	logLevelKey      = "config.log_level"
	logFileKey       = "config.log_file"
	skipMalformedKey = "config.skip_malformed"
)

// EngineConfigAdapter loads the engine configuration.
type EngineConfigAdapter interface {
	Load(ctx context.Context) (m.EngineConfig, error)
}

// LocalEngineConfigAdapter reads the configuration through viper from an afero filesystem.
type LocalEngineConfigAdapter struct {
	fs   afero.Fs
	path string
}

// NewLocalEngineConfigAdapter reads the configuration from path on fs.
func NewLocalEngineConfigAdapter(fs afero.Fs, path string) *LocalEngineConfigAdapter {
	return &LocalEngineConfigAdapter{fs: fs, path: path}
}

// Load reads the configuration. A missing or unreadable file yields
// m.DefaultEngineConfig; a file that is present but malformed is an error.
// Keys are matched case-insensitively, as viper does.
func (a *LocalEngineConfigAdapter) Load(ctx context.Context) (m.EngineConfig, error) {
	if err := ctx.Err(); err != nil {
		return m.EngineConfig{}, err
	}

	v := viper.New()
	v.SetFs(a.fs)
	v.SetConfigFile(a.path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return m.EngineConfig{}, fmt.Errorf("%w: %s: %w", m.ErrBadConfig, a.path, err)
		}

		slog.Debug("Engine config not readable, using defaults", "path", a.path, "error", err)

		return m.DefaultEngineConfig(), nil
	}

	includePaths, err := a.includePaths(v)
	if err != nil {
		return m.EngineConfig{}, err
	}

	debug, err := cast.ToBoolE(v.Get(debugKey))
	if err != nil {
		return m.EngineConfig{}, fmt.Errorf("%w: %s: %w", m.ErrBadConfig, debugKey, err)
	}

	skipMalformed, err := cast.ToBoolE(v.Get(skipMalformedKey))
	if err != nil {
		return m.EngineConfig{}, fmt.Errorf("%w: %s: %w", m.ErrBadConfig, skipMalformedKey, err)
	}

	cfg := m.EngineConfig{
		IncludePaths:  includePaths,
		Debug:         debug,
		LogLevel:      v.GetString(logLevelKey),
		LogFile:       v.GetString(logFileKey),
		SkipMalformed: skipMalformed,
	}

	slog.Debug("Loaded engine config", "path", a.path, "includePaths", len(cfg.IncludePaths))

	return cfg, nil
}

func (a *LocalEngineConfigAdapter) includePaths(v *viper.Viper) (m.IncludePaths, error) {
	raw, ok := v.Get(includePathsKey).([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of strings", m.ErrBadConfig, includePathsKey)
	}

	paths := make(m.IncludePaths, 0, len(raw))

	for i, entry := range raw {
		path, ok := entry.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is not a string", m.ErrBadConfig, includePathsKey, i)
		}

		paths = append(paths, m.MountPrefix+path)
	}

	return paths, nil
}
