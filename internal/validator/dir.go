// ABOUTME: Directory existence checks for configured paths
// ABOUTME: Converts every stat failure into an absent Dir instead of an error
package validator

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dir is the outcome of a directory check. The zero value is absent.
type Dir struct {
	path string
}

// Absent is the Dir returned when a path is missing or not a directory.
var Absent = Dir{}

// Path returns the checked path, or "" when absent.
func (d Dir) Path() string {
	return d.path
}

// Exists reports whether the path was an existing directory.
func (d Dir) Exists() bool {
	return d.path != ""
}

func (d Dir) String() string {
	if !d.Exists() {
		return "<absent>"
	}
	return d.path
}

// MarshalJSON encodes a present Dir as its path and an absent one as false.
func (d Dir) MarshalJSON() ([]byte, error) {
	if !d.Exists() {
		return []byte("false"), nil
	}
	return json.Marshal(d.path)
}

// UnmarshalJSON accepts either a path string or false. null is a no-op and
// any other JSON value is an error.
func (d *Dir) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		d.path = val
		return nil
	case bool:
		if !val {
			d.path = ""
			return nil
		}
	}
	return fmt.Errorf("directory must be a path or false, got %s", data)
}

// DirExists returns a present Dir carrying path unchanged when path is an
// existing directory. Missing paths, permission errors and non-directories
// all yield Absent.
func DirExists(path string) Dir {
	if path == "" {
		return Absent
	}
	info, err := os.Stat(path)
	if err != nil {
		return Absent
	}
	if !info.IsDir() {
		return Absent
	}
	return Dir{path: path}
}
