// ABOUTME: Resolves raw framework options into validated settings
// ABOUTME: Applies directory, logger and scalar validators with their defaults
package bootstrap

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/pomframework/pomutils/internal/validator"
)

// Option keys read from an options file.
const (
	KeyParentDirectory         = "parentDirectory"
	KeyApplicationDirectory    = "applicationDirectory"
	KeyPluginDirectory         = "pluginDirectory"
	KeyPluginSettingsDirectory = "pluginSettingsDirectory"
	KeySettingsExtensions      = "settingsExtensions"
	KeyVerbose                 = "verbose"
	KeyColors                  = "colors"
	KeyTimeout                 = "timeout"
)

const (
	// DefaultApplicationDir is joined to the parent directory when
	// applicationDirectory is not set.
	DefaultApplicationDir = "application"
	// DefaultPluginSettingsDir is joined to the parent directory when
	// pluginSettingsDirectory is not set.
	DefaultPluginSettingsDir = "pluginSettings"
	// DefaultTimeoutMillis applies when timeout is not a number.
	DefaultTimeoutMillis = 2000
)

// maxTimeoutMillis is the largest timeout a time.Duration can hold.
const maxTimeoutMillis = float64(math.MaxInt64 / int64(time.Millisecond))

// Options are validated framework bootstrap settings.
type Options struct {
	ParentDirectory      string                    `json:"parentDirectory"`
	ApplicationDirectory string                    `json:"applicationDirectory"`
	PluginDirectory      validator.Dir             `json:"pluginDirectory"`
	PluginSettings       *validator.PluginSettings `json:"pluginSettings"`
	Verbose              bool                      `json:"verbose"`
	Colors               bool                      `json:"colors"`
	Timeout              time.Duration             `json:"timeout"`
	Logger               validator.Logger          `json:"-"`
}

// Resolve validates raw options. logger is checked with
// validator.InspectLogger and stored on the result. Validation failures
// are returned as *ConfigError.
func Resolve(raw Raw, logger any) (*Options, error) {
	parent, err := raw.String(KeyParentDirectory)
	if err != nil {
		return nil, err
	}
	parent, err = validator.ParentDir(parent, NewConfigError)
	if err != nil {
		return nil, err
	}

	appDir, err := raw.String(KeyApplicationDirectory)
	if err != nil {
		return nil, err
	}
	appDir, err = validator.ApplicationDir(appDir, filepath.Join(parent, DefaultApplicationDir), NewConfigError)
	if err != nil {
		return nil, err
	}

	pluginDir, err := raw.String(KeyPluginDirectory)
	if err != nil {
		return nil, err
	}
	plugins, err := validator.PluginDir(pluginDir, NewConfigError)
	if err != nil {
		return nil, err
	}

	settings, err := resolvePluginSettings(raw, parent)
	if err != nil {
		return nil, err
	}

	l, err := validator.InspectLogger(logger, NewConfigError)
	if err != nil {
		return nil, err
	}

	timeout, err := resolveTimeout(raw[KeyTimeout])
	if err != nil {
		return nil, err
	}

	return &Options{
		ParentDirectory:      parent,
		ApplicationDirectory: appDir,
		PluginDirectory:      plugins,
		PluginSettings:       settings,
		Verbose:              validator.BoolDefaultTrue(raw[KeyVerbose]),
		Colors:               validator.BoolDefaultTrue(raw[KeyColors]),
		Timeout:              timeout,
		Logger:               l,
	}, nil
}

// ResolveFile loads path and resolves it. ConfigErrors name the file.
func ResolveFile(path string, logger any) (*Options, error) {
	raw, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	opts, err := Resolve(raw, logger)
	if err != nil {
		return nil, withFile(err, path)
	}
	return opts, nil
}

func resolvePluginSettings(raw Raw, parent string) (*validator.PluginSettings, error) {
	dir, err := raw.String(KeyPluginSettingsDirectory)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = filepath.Join(parent, DefaultPluginSettingsDir)
	}

	exts, err := raw.Strings(KeySettingsExtensions)
	if err != nil {
		return nil, err
	}
	var opts []validator.Option
	if exts != nil {
		opts = append(opts, validator.WithSourceExtensions(exts...))
	}

	settings, err := validator.FindPluginSettings(dir, opts...)
	if err != nil {
		return nil, fmt.Errorf("discovering plugin settings: %w", err)
	}
	return settings, nil
}

// resolveTimeout reads the timeout in milliseconds. Non-numbers take the
// default; negative, non-finite or unrepresentable values are rejected.
func resolveTimeout(v any) (time.Duration, error) {
	ms := validator.NumberOrDefault(v, DefaultTimeoutMillis)
	if math.IsNaN(ms) || ms < 0 || ms > maxTimeoutMillis {
		return 0, &ConfigError{Message: fmt.Sprintf("options.%s must be a non-negative number of milliseconds, got %v.", KeyTimeout, v)}
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}
