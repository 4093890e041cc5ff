// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commander

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Slot is a named placeholder for a positional command argument or an
// option value. It is declared as <name> (required) or [name] (optional).
type Slot struct {
	Name     string
	Required bool
}

// String renders the slot the way it is declared.
func (s Slot) String() string {
	if s.Required {
		return "<" + s.Name + ">"
	}
	return "[" + s.Name + "]"
}

// parseSlot turns a <name> or [name] token into a Slot.
//
// Only the first rune decides whether the slot is required. The first and
// last runes are stripped without checking that they form a matching pair,
// so "<name]" yields a required slot called "name".
func parseSlot(token string) (Slot, error) {
	if utf8.RuneCountInString(token) < 3 {
		return Slot{}, ErrInvalidArgumentToken
	}
	_, first := utf8.DecodeRuneInString(token)
	_, last := utf8.DecodeLastRuneInString(token)
	return Slot{
		Name:     token[first : len(token)-last],
		Required: strings.HasPrefix(token, "<"),
	}, nil
}

// parseSlots parses every token into a slot and returns the slots together
// with the number of required ones.
func parseSlots(declaration string, tokens []string) ([]Slot, int, error) {
	slots := make([]Slot, 0, len(tokens))
	required := 0
	for _, tok := range tokens {
		slot, err := parseSlot(tok)
		if err != nil {
			return nil, 0, &DeclarationError{Declaration: declaration, Token: tok, Err: err}
		}
		if slot.Required {
			required++
		}
		slots = append(slots, slot)
	}
	return slots, required, nil
}

func formatSlots(slots []Slot) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// expectedCount describes how many values a slot list accepts, e.g. "1" or
// "1-2".
func expectedCount(required, total int) string {
	if required == total {
		return strconv.Itoa(required)
	}
	return strconv.Itoa(required) + "-" + strconv.Itoa(total)
}
