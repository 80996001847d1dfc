// ABOUTME: Plugin settings discovery over a settings root directory
// ABOUTME: Lists root files and one level of namespace directories
package validator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSourceExtensions are the suffixes stripped from discovered names.
var DefaultSourceExtensions = []string{".js"}

// PluginSettings is the result of scanning a plugin settings root.
type PluginSettings struct {
	// Path is Absent when the root is missing or not a directory.
	Path Dir
	// Files holds the basenames of regular entries directly under the root.
	// It is nil only when the root is absent.
	Files []string
	// Namespaces maps each subdirectory of the root to the basenames of its
	// immediate entries. It is nil when the root is absent or has no
	// subdirectories.
	Namespaces map[string][]string

	order []string
}

// Found reports whether the settings root existed.
func (s *PluginSettings) Found() bool {
	return s.Path.Exists()
}

// NamespaceNames returns the namespace keys in listing order.
func (s *PluginSettings) NamespaceNames() []string {
	return s.order
}

type pluginSettingsJSON struct {
	Path             Dir `json:"path"`
	Files            any `json:"files"`
	NamespaceConfigs any `json:"namespaceConfigs"`
}

// MarshalJSON writes absent fields as false, the shape framework hosts
// read settings results in.
func (s *PluginSettings) MarshalJSON() ([]byte, error) {
	out := pluginSettingsJSON{Path: s.Path, Files: false, NamespaceConfigs: false}
	if s.Files != nil {
		out.Files = s.Files
	}
	if s.Namespaces != nil {
		out.NamespaceConfigs = s.Namespaces
	}
	return json.Marshal(out)
}

// Option configures FindPluginSettings.
type Option func(*discoverer)

// WithSourceExtensions replaces the suffixes stripped from entry names.
func WithSourceExtensions(exts ...string) Option {
	return func(d *discoverer) {
		d.exts = exts
	}
}

type discoverer struct {
	exts []string
}

// FindPluginSettings scans root and reports its files and namespace
// directories. A missing root is not an error; the result is simply not
// Found. Once the root has passed the existence check, any listing or stat
// failure is returned.
func FindPluginSettings(root string, opts ...Option) (*PluginSettings, error) {
	d := &discoverer{exts: DefaultSourceExtensions}
	for _, opt := range opts {
		opt(d)
	}

	settings := &PluginSettings{Path: DirExists(root)}
	if !settings.Found() {
		return settings, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing plugin settings %s: %w", root, err)
	}

	var dirs []string
	files := []string{}
	for _, entry := range entries {
		name := entry.Name()
		// Stat rather than entry.IsDir so symlinks resolve to their target.
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil {
			return nil, fmt.Errorf("inspecting plugin settings entry %s: %w", name, err)
		}
		if info.IsDir() {
			dirs = append(dirs, name)
		} else {
			files = append(files, d.basename(name))
		}
	}
	settings.Files = files

	if len(dirs) == 0 {
		return settings, nil
	}

	settings.Namespaces = make(map[string][]string, len(dirs))
	for _, ns := range dirs {
		names, err := d.listNamespace(filepath.Join(root, ns))
		if err != nil {
			return nil, err
		}
		if _, seen := settings.Namespaces[ns]; !seen {
			settings.order = append(settings.order, ns)
		}
		settings.Namespaces[ns] = append(settings.Namespaces[ns], names...)
	}

	return settings, nil
}

// listNamespace returns the basenames of every entry in dir, without
// descending into nested directories.
func (d *discoverer) listNamespace(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing namespace %s: %w", filepath.Base(dir), err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, d.basename(entry.Name()))
	}
	return names, nil
}

func (d *discoverer) basename(name string) string {
	for _, ext := range d.exts {
		if ext != "" && len(name) > len(ext) && strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}
