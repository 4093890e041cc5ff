// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Mode selects when output is colorized.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode parses a --color value. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways, ModeNever:
		return Mode(s), nil
	}
	return ModeAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

var (
	primary   = []color.Attribute{color.FgCyan}
	secondary = []color.Attribute{color.FgGreen}
	tertiary  = []color.Attribute{color.FgYellow}
	failure   = []color.Attribute{color.FgRed, color.Bold}
	heading   = []color.Attribute{color.Bold}
)

var isTerminalFn = term.IsTerminal

// Colorizer wraps text in color roles when enabled. The zero value never
// colorizes.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer for output written to w. In ModeAuto
// color is only enabled when w is a terminal, NO_COLOR is unset and TERM is
// not "dumb".
func NewColorizer(mode Mode, w io.Writer) Colorizer {
	switch mode {
	case ModeNever:
		return Colorizer{}
	case ModeAlways:
		return Colorizer{Enabled: true}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return Colorizer{}
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !isTerminalFn(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) wrap(attrs []color.Attribute, text string) string {
	if !c.Enabled || text == "" {
		return text
	}
	col := color.New(attrs...)
	// Override color.NoColor; the mode was resolved by NewColorizer.
	col.EnableColor()
	return col.Sprint(text)
}

// Primary colors command names and prompts.
func (c Colorizer) Primary(text string) string { return c.wrap(primary, text) }

// Secondary colors bound values and flags.
func (c Colorizer) Secondary(text string) string { return c.wrap(secondary, text) }

// Tertiary colors argument slots.
func (c Colorizer) Tertiary(text string) string { return c.wrap(tertiary, text) }

// Error colors error prefixes.
func (c Colorizer) Error(text string) string { return c.wrap(failure, text) }

// Heading colors section headings.
func (c Colorizer) Heading(text string) string { return c.wrap(heading, text) }
