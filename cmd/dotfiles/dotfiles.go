// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dotfiles is an example host program for the commander package.
// It declares a handful of commands and options and reports what it would
// do with the parsed arguments.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/yeetrun/commander/pkg/commander"
	"github.com/yeetrun/commander/pkg/manifest"
	"github.com/yeetrun/commander/pkg/tui"
)

type env struct {
	stdout io.Writer
	stderr io.Writer
	color  tui.Colorizer
	errCol tui.Colorizer
}

type handler func(e env, res *commander.Result) error

var handlers = map[string]handler{
	"activate": handleActivate,
	"add":      handleAdd,
	"commit":   handleCommit,
	"init":     handleInit,
	"clone":    handleClone,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(programName + ": ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, remaining, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	mode, err := tui.ParseMode(flags.Color)
	if err != nil {
		log.Printf("%v, using auto", err)
	}
	e := env{
		stdout: stdout,
		stderr: stderr,
		color:  tui.NewColorizer(mode, stdout),
		errCol: tui.NewColorizer(mode, stderr),
	}

	path := flags.Manifest
	if path == "" {
		path = os.Getenv("DOTFILES_MANIFEST")
	}
	p, err := loadProgram(path)
	if err != nil {
		printCLIError(e, err)
		return 1
	}

	res, err := p.Parse(remaining)
	if err != nil {
		printCLIError(e, err)
		return commander.ExitCode(err)
	}
	switch res.Outcome {
	case commander.ShowUsage:
		if err := p.WriteUsage(stdout, e.color); err != nil {
			log.Printf("failed to write usage: %v", err)
		}
		return 0
	case commander.ShowVersion:
		fmt.Fprintln(stdout, p.Version())
		return 0
	}

	if err := dispatch(e, res); err != nil {
		printCLIError(e, err)
		return 1
	}
	return 0
}

func loadProgram(path string) (*commander.Program, error) {
	if path == "" {
		return newProgram()
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

// printCLIError writes err to stderr. Parse errors are followed by the
// relevant usage line and a remediation hint.
func printCLIError(e env, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(e.stderr, "%s %v\n", e.errCol.Error("Error:"), err)
	var perr *commander.ParseError
	if errors.As(err, &perr) {
		if how := perr.How(); how != "" {
			fmt.Fprintln(e.stderr, how)
		}
	}
}

func dispatch(e env, res *commander.Result) error {
	if res.Command == "" {
		return printProperties(e, res)
	}
	h, ok := handlers[res.Command]
	if !ok {
		// Commands declared only in a manifest have no handler.
		return printProperties(e, res)
	}
	return h(e, res)
}

func printProperties(e env, res *commander.Result) error {
	keys := make([]string, 0, len(res.Properties))
	for k := range res.Properties {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(e.stdout, "%s=%s\n", k, e.color.Secondary(res.Properties[k])); err != nil {
			return err
		}
	}
	return nil
}

func say(e env, format string, args ...any) {
	fmt.Fprintf(e.stdout, "%s%s\n", e.color.Primary("> "), fmt.Sprintf(format, args...))
}

func handleInit(e env, res *commander.Result) error {
	say(e, "Initiating the tracking and management of dotfiles")
	return nil
}

func handleActivate(e env, res *commander.Result) error {
	say(e, "Activate the commit %s", e.color.Secondary(res.Lookup("commit")))
	return nil
}

func handleAdd(e env, res *commander.Result) error {
	say(e, "Adding %s", e.color.Secondary(res.Lookup("path")))
	return nil
}

func handleCommit(e env, res *commander.Result) error {
	msg := res.Lookup("message")
	if msg == "" {
		return errors.New("commit requires a message, pass -m <message>")
	}
	say(e, "Committing with message %s", e.color.Secondary(msg))
	if res.Has("--boom") {
		say(e, "Boom")
	}
	return nil
}

func handleClone(e env, res *commander.Result) error {
	dst := res.Lookup("path")
	if dst == "" {
		url := strings.TrimSuffix(res.Lookup("url"), "/")
		dst = strings.TrimSuffix(url[strings.LastIndex(url, "/")+1:], ".git")
	}
	say(e, "Cloning %s into %s", e.color.Secondary(res.Lookup("url")), e.color.Secondary(dst))
	return nil
}
