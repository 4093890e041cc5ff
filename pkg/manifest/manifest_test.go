// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/commander/pkg/commander"
)

func TestLoadExamplesAgree(t *testing.T) {
	fromTOML, err := Load(filepath.Join("..", "..", "example", "dotfiles.toml"))
	if err != nil {
		t.Fatalf("Load(toml): %v", err)
	}
	fromYAML, err := Load(filepath.Join("..", "..", "example", "dotfiles.yaml"))
	if err != nil {
		t.Fatalf("Load(yaml): %v", err)
	}
	if diff := cmp.Diff(fromTOML, fromYAML); diff != "" {
		t.Errorf("toml and yaml manifests differ (-toml +yaml):\n%s", diff)
	}
	if fromTOML.Name != "dotfiles" || len(fromTOML.Commands) != 5 || len(fromTOML.Options) != 4 {
		t.Errorf("unexpected manifest: %+v", fromTOML)
	}
	if err := fromTOML.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}
}

func TestBuild(t *testing.T) {
	m := &Manifest{
		Name:        "tool",
		Description: "does things",
		Version:     "0.3.0",
		VersionFlag: "-V|--version",
		Help:        true,
		Commands: []Entry{
			{Declaration: "run <target>", Description: "run a target"},
		},
		Options: []Entry{
			{Declaration: "-o|--out <dir>", Description: "output directory"},
		},
	}
	p, err := m.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := p.Version(); got != "0.3.0" {
		t.Errorf("Version() = %q, want %q", got, "0.3.0")
	}
	if _, ok := p.Option("-V"); !ok {
		t.Error("version option not registered under -V")
	}
	if _, ok := p.Option("--help"); !ok {
		t.Error("help option not registered")
	}

	res, err := p.Parse([]string{"run", "all", "--out", "build"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := map[string]string{"version": "0.3.0", "command": "run", "target": "all", "dir": "build"}
	if diff := cmp.Diff(want, res.Properties); diff != "" {
		t.Errorf("Properties mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildWithoutVersion(t *testing.T) {
	m := &Manifest{Name: "tool", Commands: []Entry{{Declaration: "run"}}}
	p, err := m.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Options()) != 0 {
		t.Errorf("Options() = %v, want none", p.Options())
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		m       Manifest
		wantErr error
		wantMsg string
	}{
		{
			name: "duplicate command",
			m: Manifest{Name: "tool", Commands: []Entry{
				{Declaration: "run"}, {Declaration: "run <x>"},
			}},
			wantErr: commander.ErrDuplicateCommand,
			wantMsg: "commands[1]",
		},
		{
			name:    "invalid option",
			m:       Manifest{Name: "tool", Options: []Entry{{Declaration: "out <dir>"}}},
			wantErr: commander.ErrInvalidOptionSyntax,
			wantMsg: "options[0]",
		},
		{
			name:    "version flag collides",
			m:       Manifest{Name: "tool", Version: "1", Options: []Entry{{Declaration: "-v|--verbose"}}},
			wantErr: commander.ErrDuplicateFlag,
			wantMsg: "options[0]",
		},
		{
			name:    "invalid help flag",
			m:       Manifest{Name: "tool", HelpFlag: "help"},
			wantErr: commander.ErrInvalidOptionSyntax,
			wantMsg: "help:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Build()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Build error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr string
	}{
		{
			name:   "toml",
			format: FormatTOML,
			input:  "name = \"tool\"\n[[commands]]\ndeclaration = \"run\"\n",
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input:  "name: tool\ncommands:\n  - declaration: run\n",
		},
		{
			name:    "toml unknown key",
			format:  FormatTOML,
			input:   "name = \"tool\"\ncolour = \"red\"\n",
			wantErr: "unknown keys: colour",
		},
		{
			name:    "yaml unknown key",
			format:  FormatYAML,
			input:   "name: tool\ncolour: red\n",
			wantErr: "colour",
		},
		{
			name:    "toml empty",
			format:  FormatTOML,
			input:   "",
			wantErr: ErrEmpty.Error(),
		},
		{
			name:    "yaml empty",
			format:  FormatYAML,
			input:   "",
			wantErr: ErrEmpty.Error(),
		},
		{
			name:    "missing name",
			format:  FormatYAML,
			input:   "description: nameless\n",
			wantErr: "missing a name",
		},
		{
			name:    "unsupported format",
			format:  Format("json"),
			input:   "{}",
			wantErr: "unsupported manifest format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode(strings.NewReader(tt.input), tt.format)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Decode error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode error = %v", err)
			}
			want := &Manifest{Name: "tool", Commands: []Entry{{Declaration: "run"}}}
			if diff := cmp.Diff(want, m); diff != "" {
				t.Errorf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeEmptyIsErrEmpty(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatYAML} {
		if _, err := Decode(strings.NewReader(""), f); !errors.Is(err, ErrEmpty) {
			t.Errorf("Decode(%s, \"\") error = %v, want %v", f, err, ErrEmpty)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "cli.toml", want: FormatTOML},
		{path: "cli.yaml", want: FormatYAML},
		{path: "/etc/CLI.YML", want: FormatYAML},
		{path: "cli.json", wantErr: true},
		{path: "cli", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cli.yml")
	content := "name: tool\nversion: \"2\"\nexamples:\n  - tool run\ncommands:\n  - declaration: run\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Version != "2" {
		t.Errorf("Version = %q, want %q", m.Version, "2")
	}
	if err := m.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want %v", err, os.ErrNotExist)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("name = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("Load(bad) error = %v, want it to mention %s", err, bad)
	}
}

func TestCheckFailingExample(t *testing.T) {
	m := &Manifest{
		Name:     "tool",
		Examples: []string{"tool run"},
		Commands: []Entry{{Declaration: "run <target>"}},
	}
	err := m.Check()
	if !errors.Is(err, commander.ErrMissingCommandArgument) {
		t.Fatalf("Check error = %v, want %v", err, commander.ErrMissingCommandArgument)
	}
}
