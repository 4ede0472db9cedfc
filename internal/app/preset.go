// Package app wires environment, logging and saved selections for the CLI.
package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/colselect-go/pkg/colselect/models"
)

// Preset is a named, saved column selection.
type Preset struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
}

// Selection returns the preset's columns as a selection.
func (p Preset) Selection() models.Selection {
	return models.NewSelection(p.Columns...)
}

// ParsePresets decodes a YAML document holding either one preset mapping
// or a sequence of presets.
func ParsePresets(data []byte) ([]Preset, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, errors.New("parse presets: empty document")
	}

	root := node.Content[0]
	var presets []Preset
	switch root.Kind {
	case yaml.MappingNode:
		var p Preset
		if err := root.Decode(&p); err != nil {
			return nil, fmt.Errorf("parse presets: %w", err)
		}
		presets = []Preset{p}
	case yaml.SequenceNode:
		if err := root.Decode(&presets); err != nil {
			return nil, fmt.Errorf("parse presets: %w", err)
		}
	default:
		return nil, errors.New("parse presets: expected a mapping or a sequence")
	}

	for i, p := range presets {
		if len(p.Columns) == 0 {
			return nil, fmt.Errorf("parse presets: preset %d (%q) has no columns", i, p.Name)
		}
	}
	return presets, nil
}

// LoadPreset reads a preset from spec, formatted as "file.yaml" or
// "file.yaml:name". Without a name the file must hold a single preset.
func LoadPreset(spec string) (Preset, error) {
	path, name := spec, ""
	if i := strings.LastIndex(spec, ":"); i > 0 && !isDriveLetter(spec, i) {
		path, name = spec[:i], spec[i+1:]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}
	presets, err := ParsePresets(bytes.TrimSpace(data))
	if err != nil {
		return Preset{}, err
	}

	if name == "" {
		if len(presets) != 1 {
			return Preset{}, fmt.Errorf("%s holds %d presets; choose one with %s:<name>", path, len(presets), path)
		}
		return presets[0], nil
	}
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset %q not found in %s", name, path)
}

// isDriveLetter reports whether the colon at i belongs to a Windows drive
// prefix such as "C:".
func isDriveLetter(spec string, i int) bool {
	return i == 1 && len(spec) > 2 && (spec[2] == '\\' || spec[2] == '/')
}
