// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commander

import "strings"

// CommandSpec is a registered command: its invocation name and the
// positional argument slots it accepts.
type CommandSpec struct {
	Name        string
	Description string
	Slots       []Slot

	required int
}

// NewCommandSpec builds a CommandSpec from a declaration such as
// "clone <url> [path]".
func NewCommandSpec(declaration, description string) (*CommandSpec, error) {
	tokens := tokenize(declaration, commandSeparators)
	if len(tokens) == 0 {
		return nil, &DeclarationError{Declaration: declaration, Err: ErrEmptyDeclaration}
	}
	slots, required, err := parseSlots(declaration, tokens[1:])
	if err != nil {
		return nil, err
	}
	return &CommandSpec{
		Name:        tokens[0],
		Description: description,
		Slots:       slots,
		required:    required,
	}, nil
}

// RequiredCount returns the number of required slots.
func (c *CommandSpec) RequiredCount() int {
	return c.required
}

// Usage returns the command as it would be declared, e.g. "clone <url> [path]".
func (c *CommandSpec) Usage() string {
	if len(c.Slots) == 0 {
		return c.Name
	}
	return strings.Join([]string{c.Name, formatSlots(c.Slots)}, " ")
}
