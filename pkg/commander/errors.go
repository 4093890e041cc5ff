// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commander

import (
	"errors"
	"fmt"
)

// Declaration errors are returned while the program is being configured.
// They describe a mistake in the CLI definition, not in user input.
var (
	ErrEmptyDeclaration     = errors.New("declaration is empty")
	ErrInvalidOptionSyntax  = errors.New("option declaration must start with a flag")
	ErrInvalidAliases       = errors.New("option accepts at most two aliases")
	ErrInvalidArgumentToken = errors.New("argument must be written as <name> or [name]")
	ErrDuplicateCommand     = errors.New("command is already registered")
	ErrDuplicateFlag        = errors.New("flag is already registered")
)

// Parse errors are returned by Parse and describe end-user input mistakes.
var (
	ErrCommandNotFound        = errors.New("command not found")
	ErrMissingCommandArgument = errors.New("missing command argument")
	ErrOptionArgMissing       = errors.New("missing option argument")
	ErrUnknownOption          = errors.New("unknown option")
	ErrUnexpectedArgument     = errors.New("unexpected argument")
)

// DeclarationError is returned when a command or option declaration cannot be
// registered. Err is one of the declaration sentinels above.
type DeclarationError struct {
	Declaration string // The declaration as passed by the caller
	Token       string // The offending token, if a single token is at fault
	Err         error
}

func (e *DeclarationError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("invalid declaration %q: %v (token %q)", e.Declaration, e.Err, e.Token)
	}
	return fmt.Sprintf("invalid declaration %q: %v", e.Declaration, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the runtime arguments do not match the
// registered commands and options.
//
// Error returns a one-line description of what went wrong. How returns a
// remediation hint and Usage holds the usage line of the command or option
// involved, when there is one.
type ParseError struct {
	Program  string // Program name, used in hints
	Token    string // The offending token (command name or flag)
	Usage    string // Usage line of the relevant command or option
	Expected string // "1", "1-2"; set for missing argument errors
	Got      int    // Number of values supplied; set for missing argument errors
	Err      error
}

func (e *ParseError) Error() string {
	switch e.Err {
	case ErrCommandNotFound:
		return fmt.Sprintf("unknown command: %s", e.Token)
	case ErrMissingCommandArgument:
		return fmt.Sprintf("'%s' requires %s argument(s), got %d", e.Token, e.Expected, e.Got)
	case ErrOptionArgMissing:
		return fmt.Sprintf("'%s' requires %s value(s), got %d", e.Token, e.Expected, e.Got)
	case ErrUnknownOption:
		return fmt.Sprintf("unknown flag: %s", e.Token)
	case ErrUnexpectedArgument:
		return fmt.Sprintf("unexpected argument: %s", e.Token)
	}
	if e.Token != "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Token)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// How returns a hint on how to fix the invocation.
func (e *ParseError) How() string {
	switch e.Err {
	case ErrMissingCommandArgument, ErrOptionArgMissing:
		if e.Usage != "" {
			return fmt.Sprintf("Usage: %s %s", e.Program, e.Usage)
		}
	case ErrUnexpectedArgument:
		return "Command arguments must come before any option"
	case ErrCommandNotFound:
		return fmt.Sprintf("Run '%s --help' to list the available commands", e.Program)
	case ErrUnknownOption:
		return fmt.Sprintf("Run '%s --help' to list the available options", e.Program)
	}
	return ""
}

// ExitCode maps the error returned by Parse to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
