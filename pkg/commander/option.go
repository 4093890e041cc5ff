// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commander

import "strings"

// OptionSpec is a registered option: a primary flag, an optional secondary
// alias and the value slots that follow the flag on the command line.
type OptionSpec struct {
	Primary     string
	Secondary   string // Empty when the option has a single alias
	Description string
	Slots       []Slot

	required int
}

// NewOptionSpec builds an OptionSpec from a declaration such as
// "-c|--cool <name>" or "-b, --boom".
func NewOptionSpec(declaration, description string) (*OptionSpec, error) {
	tokens := tokenize(declaration, optionSeparators)
	if len(tokens) == 0 {
		return nil, &DeclarationError{Declaration: declaration, Err: ErrEmptyDeclaration}
	}
	if !isFlag(tokens[0]) {
		return nil, &DeclarationError{Declaration: declaration, Token: tokens[0], Err: ErrInvalidOptionSyntax}
	}

	o := &OptionSpec{Primary: tokens[0], Description: description}
	rest := tokens[1:]
	if len(rest) > 0 && isFlag(rest[0]) {
		o.Secondary = rest[0]
		rest = rest[1:]
	}
	if o.Secondary != "" && len(rest) > 0 && isFlag(rest[0]) {
		return nil, &DeclarationError{Declaration: declaration, Token: rest[0], Err: ErrInvalidAliases}
	}

	slots, required, err := parseSlots(declaration, rest)
	if err != nil {
		return nil, err
	}
	o.Slots = slots
	o.required = required
	return o, nil
}

// Flags returns the option's aliases, primary first.
func (o *OptionSpec) Flags() []string {
	if o.Secondary == "" {
		return []string{o.Primary}
	}
	return []string{o.Primary, o.Secondary}
}

// Matches reports whether flag is one of the option's aliases.
func (o *OptionSpec) Matches(flag string) bool {
	return flag == o.Primary || (o.Secondary != "" && flag == o.Secondary)
}

// RequiredCount returns the number of required value slots.
func (o *OptionSpec) RequiredCount() int {
	return o.required
}

// Usage returns the option's flags and slots, e.g. "-c, --cool <name>".
func (o *OptionSpec) Usage() string {
	s := strings.Join(o.Flags(), ", ")
	if len(o.Slots) > 0 {
		s += " " + formatSlots(o.Slots)
	}
	return s
}
