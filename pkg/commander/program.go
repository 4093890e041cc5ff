// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commander

import (
	"fmt"
	"maps"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

const (
	// PropertyCommand is the property holding the resolved command name.
	PropertyCommand = "command"
	// PropertyVersion is the property holding the program version.
	PropertyVersion = "version"

	defaultVersionFlag        = "-v|--version"
	defaultVersionDescription = "display program version"
	defaultHelpFlag           = "-h|--help"
	defaultHelpDescription    = "display this help message"
)

// Program is the registry of commands and options for one CLI program.
// It is configured with SetVersion, AddHelp, AddOption and AddCommand and
// then consumed by Parse. A Program is not safe for concurrent use.
type Program struct {
	name        string
	description string
	examples    []string

	commands     []*CommandSpec
	commandIndex map[string]*CommandSpec
	options      []*OptionSpec
	flagIndex    map[string]*OptionSpec
	flags        set.Set[string]

	versionOpt *OptionSpec
	helpOpt    *OptionSpec

	// properties holds configuration-time properties (the version) until
	// the first successful Parse, and the parsed properties afterwards.
	properties map[string]string
	base       map[string]string
	last       *Result
}

// New returns an empty Program. name and description are only used for
// usage output and error hints.
func New(name, description string) *Program {
	return &Program{
		name:        name,
		description: description,
		flags:       make(set.Set[string]),
	}
}

// Name returns the program name.
func (p *Program) Name() string { return p.name }

// Description returns the program description.
func (p *Program) Description() string { return p.description }

// FlagOption customizes the flag registered by SetVersion and AddHelp.
type FlagOption func(*flagConfig)

type flagConfig struct {
	declaration string
	description string
}

// WithFlag overrides the flag declaration, e.g. "-V|--version".
func WithFlag(declaration string) FlagOption {
	return func(c *flagConfig) {
		if declaration != "" {
			c.declaration = declaration
		}
	}
}

// WithDescription overrides the flag description.
func WithDescription(description string) FlagOption {
	return func(c *flagConfig) {
		if description != "" {
			c.description = description
		}
	}
}

func newFlagConfig(declaration, description string, opts []FlagOption) flagConfig {
	c := flagConfig{declaration: declaration, description: description}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// SetVersion records the program version and registers the version option
// ("-v|--version" unless overridden). Calling it again updates the version;
// the option is only registered once per declaration.
func (p *Program) SetVersion(value string, opts ...FlagOption) error {
	c := newFlagConfig(defaultVersionFlag, defaultVersionDescription, opts)
	opt, err := p.registerBuiltin(p.versionOpt, c)
	if err != nil {
		return err
	}
	p.versionOpt = opt
	mak.Set(&p.base, PropertyVersion, value)
	mak.Set(&p.properties, PropertyVersion, value)
	return nil
}

// AddHelp registers the help option ("-h|--help" unless overridden).
func (p *Program) AddHelp(opts ...FlagOption) error {
	c := newFlagConfig(defaultHelpFlag, defaultHelpDescription, opts)
	opt, err := p.registerBuiltin(p.helpOpt, c)
	if err != nil {
		return err
	}
	p.helpOpt = opt
	return nil
}

// registerBuiltin registers the version or help option. If cur was built
// from the same flags it is kept and only its description is updated.
func (p *Program) registerBuiltin(cur *OptionSpec, c flagConfig) (*OptionSpec, error) {
	opt, err := NewOptionSpec(c.declaration, c.description)
	if err != nil {
		return nil, err
	}
	if cur != nil && cur.Primary == opt.Primary && cur.Secondary == opt.Secondary {
		cur.Description = opt.Description
		return cur, nil
	}
	if err := p.addOption(c.declaration, opt); err != nil {
		return nil, err
	}
	return opt, nil
}

// AddOption registers an option such as "-m <message>" or "-b, --boom".
// It fails if either alias is already used by another option.
func (p *Program) AddOption(declaration, description string) error {
	opt, err := NewOptionSpec(declaration, description)
	if err != nil {
		return err
	}
	return p.addOption(declaration, opt)
}

func (p *Program) addOption(declaration string, opt *OptionSpec) error {
	for _, f := range opt.Flags() {
		if p.flags.Contains(f) {
			return &DeclarationError{Declaration: declaration, Token: f, Err: ErrDuplicateFlag}
		}
	}
	if opt.Secondary == opt.Primary {
		return &DeclarationError{Declaration: declaration, Token: opt.Secondary, Err: ErrDuplicateFlag}
	}
	for _, f := range opt.Flags() {
		p.flags.Add(f)
		mak.Set(&p.flagIndex, f, opt)
	}
	p.options = append(p.options, opt)
	return nil
}

// AddCommand registers a command such as "clone <url> [path]". It fails if
// a command with the same name is already registered.
func (p *Program) AddCommand(declaration, description string) error {
	cmd, err := NewCommandSpec(declaration, description)
	if err != nil {
		return err
	}
	if _, ok := p.commandIndex[cmd.Name]; ok {
		return &DeclarationError{Declaration: declaration, Token: cmd.Name, Err: ErrDuplicateCommand}
	}
	mak.Set(&p.commandIndex, cmd.Name, cmd)
	p.commands = append(p.commands, cmd)
	return nil
}

// MustAddOption is like AddOption but panics if the declaration is invalid.
func (p *Program) MustAddOption(declaration, description string) {
	if err := p.AddOption(declaration, description); err != nil {
		panic(fmt.Sprintf("commander: %v", err))
	}
}

// MustAddCommand is like AddCommand but panics if the declaration is invalid.
func (p *Program) MustAddCommand(declaration, description string) {
	if err := p.AddCommand(declaration, description); err != nil {
		panic(fmt.Sprintf("commander: %v", err))
	}
}

// AddExample records an example invocation shown in usage output.
// Examples may start with the program name.
func (p *Program) AddExample(line string) {
	p.examples = append(p.examples, line)
}

// Examples returns the recorded example invocations.
func (p *Program) Examples() []string {
	return append([]string(nil), p.examples...)
}

// Commands returns the registered commands in registration order.
func (p *Program) Commands() []*CommandSpec {
	return append([]*CommandSpec(nil), p.commands...)
}

// Options returns the registered options in registration order.
func (p *Program) Options() []*OptionSpec {
	return append([]*OptionSpec(nil), p.options...)
}

// Command returns the command registered under name.
func (p *Program) Command(name string) (*CommandSpec, bool) {
	c, ok := p.commandIndex[name]
	return c, ok
}

// Option returns the option registered under flag (primary or secondary).
func (p *Program) Option(flag string) (*OptionSpec, bool) {
	o, ok := p.flagIndex[flag]
	return o, ok
}

// Version returns the version set with SetVersion, or "".
func (p *Program) Version() string {
	return p.base[PropertyVersion]
}

// Lookup returns the property stored under key: a slot name, "command" or
// "version". It returns "" for unknown keys.
func (p *Program) Lookup(key string) string {
	return p.properties[key]
}

// Has reports whether the option owning flag was given in the last
// successful Parse.
func (p *Program) Has(flag string) bool {
	if p.last == nil {
		return false
	}
	return p.last.Has(flag)
}

// Properties returns a copy of the current properties.
func (p *Program) Properties() map[string]string {
	return maps.Clone(p.properties)
}
