// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commander

import (
	"strings"
	"unicode"
)

// commandSeparators splits command declarations on whitespace.
func commandSeparators(r rune) bool {
	return unicode.IsSpace(r)
}

// optionSeparators splits option declarations on whitespace, '|' and ','
// so that "-b|--boom", "-b, --boom" and "-b --boom" are equivalent.
func optionSeparators(r rune) bool {
	return unicode.IsSpace(r) || r == '|' || r == ','
}

// tokenize splits input on runs of separator runes. Empty fragments are
// dropped and order is preserved.
func tokenize(input string, isSep func(rune) bool) []string {
	return strings.FieldsFunc(input, isSep)
}

func isFlag(token string) bool {
	return strings.HasPrefix(token, "-")
}
