// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/shayne/yargs"
	"github.com/yeetrun/commander/pkg/commander"
)

const (
	programName        = "dotfiles"
	programDescription = "is a tool to manage dot files"
	programVersion     = "1.0"
)

type declaration struct {
	Syntax      string
	Description string
}

// Keep handlers in dotfiles.go aligned with these commands.
var commandDecls = []declaration{
	{Syntax: "activate <commit>", Description: "activate the files recorded in a commit"},
	{Syntax: "add <path>", Description: "add a file to an env"},
	{Syntax: "commit", Description: "record the tracked files"},
	{Syntax: "init", Description: "initiate the management of dotfiles"},
	{Syntax: "clone <url> [path]", Description: "clone the repository"},
}

var optionDecls = []declaration{
	{Syntax: "-m <message>", Description: "provide a message to the commit"},
	{Syntax: "-b, --boom", Description: "with aliases"},
	{Syntax: "-c|--cool <name>", Description: "with required"},
	{Syntax: "-d|--doom [party]", Description: "optional"},
}

var examples = []string{
	"dotfiles init",
	"dotfiles add ~/.vimrc",
	"dotfiles commit -m 'track vimrc'",
	"dotfiles clone https://example.com/dots.git ~/dots",
}

func newProgram() (*commander.Program, error) {
	p := commander.New(programName, programDescription)
	if err := p.SetVersion(programVersion); err != nil {
		return nil, err
	}
	if err := p.AddHelp(); err != nil {
		return nil, err
	}
	for _, d := range commandDecls {
		if err := p.AddCommand(d.Syntax, d.Description); err != nil {
			return nil, err
		}
	}
	for _, d := range optionDecls {
		if err := p.AddOption(d.Syntax, d.Description); err != nil {
			return nil, err
		}
	}
	for _, ex := range examples {
		p.AddExample(ex)
	}
	return p, nil
}

// globalFlagsParsed are consumed before the remaining arguments reach the
// program's own parser.
type globalFlagsParsed struct {
	Manifest string `flag:"manifest" help:"Load declarations from a TOML or YAML manifest (DOTFILES_MANIFEST)"`
	Color    string `flag:"color" help:"Colorize output: auto, always or never"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}
