// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest loads command and option declarations from TOML or YAML
// files and builds a commander.Program from them.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/commander/pkg/commander"
	"gopkg.in/yaml.v3"
)

// Format is a manifest encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Manifest describes a program's command-line surface.
type Manifest struct {
	Name        string   `toml:"name" yaml:"name"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty"`
	Version     string   `toml:"version,omitempty" yaml:"version,omitempty"`
	VersionFlag string   `toml:"version_flag,omitempty" yaml:"version_flag,omitempty"`
	Help        bool     `toml:"help,omitempty" yaml:"help,omitempty"`
	HelpFlag    string   `toml:"help_flag,omitempty" yaml:"help_flag,omitempty"`
	Examples    []string `toml:"examples,omitempty" yaml:"examples,omitempty"`
	Commands    []Entry  `toml:"commands,omitempty" yaml:"commands,omitempty"`
	Options     []Entry  `toml:"options,omitempty" yaml:"options,omitempty"`
}

// Entry is one command or option declaration.
type Entry struct {
	Declaration string `toml:"declaration" yaml:"declaration"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// ErrEmpty is returned when a manifest has no content.
var ErrEmpty = errors.New("manifest is empty")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported manifest extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// Decode decodes a manifest from r. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&m)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
		if len(md.Keys()) == 0 {
			return nil, ErrEmpty
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmpty
			}
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
	if m.Name == "" {
		return nil, errors.New("manifest is missing a name")
	}
	return &m, nil
}

// Build registers the manifest's declarations on a new Program. The version
// option is only registered when a version is set.
func (m *Manifest) Build() (*commander.Program, error) {
	p := commander.New(m.Name, m.Description)
	if m.Version != "" {
		if err := p.SetVersion(m.Version, commander.WithFlag(m.VersionFlag)); err != nil {
			return nil, fmt.Errorf("version: %w", err)
		}
	}
	if m.Help || m.HelpFlag != "" {
		if err := p.AddHelp(commander.WithFlag(m.HelpFlag)); err != nil {
			return nil, fmt.Errorf("help: %w", err)
		}
	}
	for i, e := range m.Commands {
		if err := p.AddCommand(e.Declaration, e.Description); err != nil {
			return nil, fmt.Errorf("commands[%d]: %w", i, err)
		}
	}
	for i, e := range m.Options {
		if err := p.AddOption(e.Declaration, e.Description); err != nil {
			return nil, fmt.Errorf("options[%d]: %w", i, err)
		}
	}
	for _, ex := range m.Examples {
		p.AddExample(ex)
	}
	return p, nil
}

// Check builds the program and parses every example against it.
func (m *Manifest) Check() error {
	p, err := m.Build()
	if err != nil {
		return err
	}
	return p.CheckExamples()
}
