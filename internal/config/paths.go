// ABOUTME: Centralized path resolution for pomutils options files
// ABOUTME: Respects the --config flag and POMUTILS_CONFIG environment variable

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig names the environment variable that points at an options file.
const EnvConfig = "POMUTILS_CONFIG"

// Candidates are the options file names searched in the working directory,
// in order of preference.
var Candidates = []string{"pom.json", "pom.toml", "pom.yaml", "pom.yml"}

// ErrNoConfig is returned when no options file can be located.
var ErrNoConfig = errors.New("no options file found")

// ConfigPath returns the options file to load.
// The flag value wins, then POMUTILS_CONFIG, then the first candidate file
// present in the working directory.
// Returns an error if POMUTILS_CONFIG is set but contains only whitespace.
func ConfigPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}

	if path, ok := os.LookupEnv(EnvConfig); ok && path != "" {
		path = strings.TrimSpace(path)
		if path == "" {
			return "", fmt.Errorf("%s is set but contains only whitespace", EnvConfig)
		}
		return path, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return findCandidate(wd)
}

func findCandidate(dir string) (string, error) {
	for _, name := range Candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrNoConfig, dir, strings.Join(Candidates, ", "))
}
