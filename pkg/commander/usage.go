// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commander

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/commander/pkg/tui"
)

// Usage returns the uncolored usage text.
func (p *Program) Usage() string {
	var b strings.Builder
	// strings.Builder never fails.
	_ = p.WriteUsage(&b, tui.Colorizer{})
	return b.String()
}

// WriteUsage writes the usage text to w: the program header, all commands
// in registration order, all options sorted by primary flag, and examples.
func (p *Program) WriteUsage(w io.Writer, c tui.Colorizer) error {
	var b strings.Builder

	b.WriteString(c.Primary(p.name))
	if p.description != "" {
		b.WriteString(" - ")
		b.WriteString(p.description)
	}
	b.WriteString("\n\n")

	b.WriteString(c.Heading("USAGE:"))
	b.WriteString("\n")
	synopsis := p.name
	if len(p.commands) > 0 {
		synopsis += " COMMAND [ARGS...]"
	}
	if len(p.options) > 0 {
		synopsis += " [OPTIONS]"
	}
	fmt.Fprintf(&b, "    %s\n\n", synopsis)

	if len(p.commands) > 0 {
		b.WriteString(c.Heading("COMMANDS:"))
		b.WriteString("\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
		for _, cmd := range p.commands {
			fmt.Fprintf(tw, "    %s\t%s\n", c.Primary(cmd.Usage()), cmd.Description)
		}
		tw.Flush()
		b.WriteString("\n")
	}

	if len(p.options) > 0 {
		opts := p.Options()
		slices.SortStableFunc(opts, func(a, b *OptionSpec) int {
			return strings.Compare(a.Primary, b.Primary)
		})
		b.WriteString(c.Heading("OPTIONS:"))
		b.WriteString("\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
		for _, opt := range opts {
			fmt.Fprintf(tw, "    %s\t%s\n", c.Secondary(opt.Usage()), opt.Description)
		}
		tw.Flush()
		b.WriteString("\n")
	}

	if len(p.examples) > 0 {
		b.WriteString(c.Heading("EXAMPLES:"))
		b.WriteString("\n")
		for _, ex := range p.examples {
			fmt.Fprintf(&b, "    %s\n", ex)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// CommandUsage returns "program <usage line>" for the named command.
func (p *Program) CommandUsage(name string) (string, bool) {
	cmd, ok := p.commandIndex[name]
	if !ok {
		return "", false
	}
	return p.name + " " + cmd.Usage(), true
}
