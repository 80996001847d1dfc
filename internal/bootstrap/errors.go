// ABOUTME: Error type the bootstrap layer hands to option validators
// ABOUTME: Carries the failing message and, when known, the options file
package bootstrap

import (
	"errors"
	"fmt"
)

// ConfigError reports invalid framework options.
type ConfigError struct {
	Message string
	File    string // Options file being resolved, if any
}

func (e *ConfigError) Error() string {
	if e.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// NewConfigError builds a *ConfigError. It satisfies validator.ErrorFunc.
func NewConfigError(msg string) error {
	return &ConfigError{Message: msg}
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// withFile attaches the options file to a ConfigError in err.
func withFile(err error, file string) error {
	var ce *ConfigError
	if file != "" && errors.As(err, &ce) && ce.File == "" {
		ce.File = file
	}
	return err
}
