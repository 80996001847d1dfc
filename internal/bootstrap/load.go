// ABOUTME: Reads raw framework options from JSON, TOML or YAML files
// ABOUTME: Format is chosen by file extension
package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Raw holds option values exactly as decoded from a file.
type Raw map[string]any

// Format is an options file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the encoding for path from its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", &ConfigError{
		Message: fmt.Sprintf("unsupported options file extension %q (want .json, .toml, .yaml or .yml)", filepath.Ext(path)),
		File:    path,
	}
}

// LoadFile reads and decodes an options file.
func LoadFile(path string) (Raw, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}

	raw, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return raw, nil
}

// Decode parses data in the given format. An empty document yields an
// empty Raw.
func Decode(data []byte, format Format) (Raw, error) {
	raw := Raw{}
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, nil
	}

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unknown options format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if raw == nil {
		raw = Raw{}
	}
	return raw, nil
}

// String returns the string stored under key. Missing and null values
// yield "".
func (r Raw) String(key string) (string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &ConfigError{Message: fmt.Sprintf("options.%s must be a string, got %T.", key, v)}
	}
	return s, nil
}

// Strings returns the string list stored under key.
func (r Raw) Strings(key string) ([]string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &ConfigError{Message: fmt.Sprintf("options.%s must be a list of strings.", key)}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &ConfigError{Message: fmt.Sprintf("options.%s must be a list of strings.", key)}
		}
		out = append(out, s)
	}
	return out, nil
}
