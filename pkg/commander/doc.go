// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commander parses command lines against declaratively registered
// commands and options.
//
// Commands and options are declared with a small syntax:
//
//	clone <url> [path]     command "clone", required slot url, optional slot path
//	-c|--cool <name>       option with aliases -c and --cool and a required value
//	-b, --boom             option with two aliases and no value
//
// A Program collects the declarations and parses the runtime arguments into
// a property bag that maps "command", "version" and every slot name to its
// bound value. All values are strings.
//
// # Basic Usage
//
//	p := commander.New("dotfiles", "manage dot files")
//	if err := p.SetVersion("1.0"); err != nil {
//	    log.Fatal(err)
//	}
//	_ = p.AddHelp()
//	p.MustAddCommand("clone <url> [path]", "clone the repository")
//	p.MustAddOption("-m <message>", "commit message")
//
//	res, err := p.Parse(os.Args[1:])
//	if err != nil {
//	    fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//	    os.Exit(commander.ExitCode(err))
//	}
//	switch res.Outcome {
//	case commander.ShowUsage:
//	    fmt.Print(p.Usage())
//	case commander.ShowVersion:
//	    fmt.Println(p.Version())
//	default:
//	    fmt.Println(res.Lookup("command"), res.Lookup("url"))
//	}
//
// # Command Line Shape
//
// Command arguments come first and options last:
//
//	program COMMAND [ARG...] [FLAG [VALUE...]...]
//
// The first token starting with "-" ends the command section. Each flag
// consumes the following non-flag tokens up to the number of value slots it
// declares.
//
// # Errors
//
// Configuration calls return a *DeclarationError for malformed or duplicate
// declarations; these are programming errors and the Must* helpers panic on
// them. Parse returns a *ParseError for invalid user input. Both unwrap to
// the sentinel errors declared in this package, so callers can use
// errors.Is.
package commander
