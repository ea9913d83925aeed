// Package preset loads named operation presets from YAML.
//
// A preset binds a name to exactly one operation and its parameters,
// resolved to the same ops.Operation values the CLI subcommands build.
// Builtin presets are embedded; additional presets can be loaded from a
// user file. Presets are read-only: nothing is ever written back.
package preset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/praetorian-inc/snip/pkg/ops"
)

// Preset is a named, ready-to-apply operation.
type Preset struct {
	Name        string
	Description string
	Operation   ops.Operation
}

// Loader reads preset definitions from YAML files.
type Loader struct {
	fs fs.FS // filesystem holding the builtin presets
}

// NewLoader creates a loader with the embedded builtin presets.
func NewLoader() *Loader {
	return &Loader{fs: builtinPresetsFS}
}

// NewLoaderWithFS creates a loader with a custom filesystem; the builtin
// presets are read from "presets/*.yml" within it.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// Load parses presets from YAML bytes.
func (l *Loader) Load(data []byte) ([]*Preset, error) {
	var file yamlPresetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("no presets found in YAML")
	}

	presets := make([]*Preset, 0, len(file.Presets))
	for _, yp := range file.Presets {
		p, err := convertYAMLPreset(yp)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// LoadFile parses presets from a YAML file path.
func (l *Loader) LoadFile(path string) ([]*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.Load(data)
}

// LoadBuiltin loads all builtin presets from the embedded filesystem,
// sorted by name.
func (l *Loader) LoadBuiltin() ([]*Preset, error) {
	var presets []*Preset

	err := fs.WalkDir(l.fs, "presets", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		loaded, err := l.Load(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		presets = append(presets, loaded...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// Find returns the preset with the given name, or nil.
func Find(presets []*Preset, name string) *Preset {
	for _, p := range presets {
		if p.Name == name {
			return p
		}
	}
	return nil
}
