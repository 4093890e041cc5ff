// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commander

import (
	"fmt"
	"maps"

	"github.com/google/shlex"
	"tailscale.com/util/mak"
)

// Outcome tells the host what to do with a parse result.
type Outcome int

const (
	// Dispatch means the arguments were parsed; the host should act on the
	// properties.
	Dispatch Outcome = iota
	// ShowUsage means usage output was requested, either explicitly or by
	// passing no arguments at all.
	ShowUsage
	// ShowVersion means the version flag was given and a version is set.
	ShowVersion
)

func (o Outcome) String() string {
	switch o {
	case Dispatch:
		return "dispatch"
	case ShowUsage:
		return "usage"
	case ShowVersion:
		return "version"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

const (
	legacyHelpShort = "-h"
	legacyHelpLong  = "--help"
)

// Result is the outcome of a successful Parse.
type Result struct {
	Outcome Outcome
	// Command is the resolved command name; empty for option-only
	// invocations and for usage/version outcomes.
	Command string
	// Properties maps "command", "version" and every bound slot name to
	// its value.
	Properties map[string]string
	// Options maps the primary flag of every option given on the command
	// line to the values it consumed.
	Options map[string][]string
	// Args holds the positional values given to the command, including
	// those beyond the declared slots.
	Args []string

	aliases map[string]string // flag -> primary flag
}

// Lookup returns the property stored under key, or "".
func (r *Result) Lookup(key string) string {
	return r.Properties[key]
}

// Has reports whether the option owning flag was given. flag may be either
// alias of the option.
func (r *Result) Has(flag string) bool {
	primary, ok := r.aliases[flag]
	if !ok {
		primary = flag
	}
	_, ok = r.Options[primary]
	return ok
}

// partition splits args into the leading run of non-flag tokens and
// everything from the first flag onwards.
func partition(args []string) (commandArgs, optionArgs []string) {
	for i, arg := range args {
		if isFlag(arg) {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// Parse parses args, which must not include the program name.
//
// Command arguments must precede all options: the leading non-flag tokens
// name the command and its positional values, and the first token starting
// with "-" begins the option section. Parse never exits the process;
// usage and version requests are reported through Result.Outcome.
//
// Each call starts from the configuration-time properties, so bindings
// from an earlier Parse never leak into a later one.
func (p *Program) Parse(args []string) (*Result, error) {
	res := &Result{
		Outcome:    Dispatch,
		Properties: maps.Clone(p.base),
		aliases:    p.aliasIndex(),
	}
	if res.Properties == nil {
		res.Properties = make(map[string]string)
	}

	commandArgs, optionArgs := partition(args)
	if len(commandArgs) == 0 && len(optionArgs) == 0 {
		res.Outcome = ShowUsage
		return res, nil
	}
	if len(optionArgs) > 0 {
		switch first := optionArgs[0]; {
		case p.isVersionFlag(first):
			res.Outcome = ShowVersion
			return res, nil
		case p.isHelpFlag(first):
			res.Outcome = ShowUsage
			return res, nil
		}
	}

	if len(commandArgs) > 0 {
		if err := p.bindCommand(res, commandArgs); err != nil {
			return nil, err
		}
	}
	if err := p.bindOptions(res, optionArgs); err != nil {
		return nil, err
	}

	p.properties = maps.Clone(res.Properties)
	p.last = res
	return res, nil
}

// ParseLine splits line like a POSIX shell would and parses the result.
// A leading program name is stripped.
func (p *Program) ParseLine(line string) (*Result, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split %q: %w", line, err)
	}
	if len(args) > 0 && p.name != "" && args[0] == p.name {
		args = args[1:]
	}
	return p.Parse(args)
}

// CheckExamples parses every example added with AddExample and returns the
// first failure.
func (p *Program) CheckExamples() error {
	for _, ex := range p.examples {
		if _, err := p.ParseLine(ex); err != nil {
			return fmt.Errorf("example %q: %w", ex, err)
		}
	}
	return nil
}

func (p *Program) isVersionFlag(arg string) bool {
	return p.versionOpt != nil && p.versionOpt.Matches(arg) && p.Version() != ""
}

// isHelpFlag matches the registered help option. Without one, "-h" and
// "--help" still request usage unless another option claims them.
func (p *Program) isHelpFlag(arg string) bool {
	if p.helpOpt != nil {
		return p.helpOpt.Matches(arg)
	}
	if arg != legacyHelpShort && arg != legacyHelpLong {
		return false
	}
	_, taken := p.flagIndex[arg]
	return !taken
}

func (p *Program) bindCommand(res *Result, args []string) error {
	name, values := args[0], args[1:]
	cmd, ok := p.commandIndex[name]
	if !ok {
		return &ParseError{Program: p.name, Token: name, Err: ErrCommandNotFound}
	}
	res.Command = cmd.Name
	res.Properties[PropertyCommand] = cmd.Name
	res.Args = append([]string(nil), values...)

	if len(values) < cmd.RequiredCount() {
		return &ParseError{
			Program:  p.name,
			Token:    cmd.Name,
			Usage:    cmd.Usage(),
			Expected: expectedCount(cmd.RequiredCount(), len(cmd.Slots)),
			Got:      len(values),
			Err:      ErrMissingCommandArgument,
		}
	}
	for i := range min(len(values), len(cmd.Slots)) {
		res.Properties[cmd.Slots[i].Name] = values[i]
	}
	return nil
}

func (p *Program) bindOptions(res *Result, args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !isFlag(arg) {
			return &ParseError{Program: p.name, Token: arg, Err: ErrUnexpectedArgument}
		}
		opt, ok := p.flagIndex[arg]
		if !ok {
			return &ParseError{Program: p.name, Token: arg, Err: ErrUnknownOption}
		}

		var values []string
		for len(values) < len(opt.Slots) && i+1 < len(args) && !isFlag(args[i+1]) {
			i++
			values = append(values, args[i])
		}
		if len(values) < opt.RequiredCount() {
			return &ParseError{
				Program:  p.name,
				Token:    arg,
				Usage:    opt.Usage(),
				Expected: expectedCount(opt.RequiredCount(), len(opt.Slots)),
				Got:      len(values),
				Err:      ErrOptionArgMissing,
			}
		}
		for j, v := range values {
			res.Properties[opt.Slots[j].Name] = v
		}
		mak.Set(&res.Options, opt.Primary, values)
	}
	return nil
}

func (p *Program) aliasIndex() map[string]string {
	m := make(map[string]string, len(p.flagIndex))
	for flag, opt := range p.flagIndex {
		m[flag] = opt.Primary
	}
	return m
}
