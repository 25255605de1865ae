// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package echo

import (
	"fmt"
	"strings"
)

// Quote renders an argument for display, quoting and escaping whenever the
// bare form would be ambiguous to a human reader. The rules favor
// readability over shell round-tripping:
//   - empty arguments display as ""
//   - arguments containing single quotes are wrapped in double quotes
//   - arguments containing whitespace, control characters, or shell
//     metacharacters are wrapped in single quotes
//   - everything else displays as-is
func Quote(arg string) string {
	if arg == "" {
		return `""`
	}

	if strings.ContainsRune(arg, '\'') {
		escaped := strings.ReplaceAll(arg, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		return `"` + escapeControl(escaped) + `"`
	}

	if needsQuoting(arg) {
		return "'" + escapeControl(arg) + "'"
	}

	return arg
}

// needsQuoting reports whether the argument contains characters that make
// the bare form hard to read or visually misleading.
func needsQuoting(arg string) bool {
	for _, r := range arg {
		switch r {
		case ' ', '\t', '\n', '\r', '"', '\'',
			'*', '?', '[', ']', '{', '}', '~', '$', '`',
			'|', '&', ';', '(', ')', '<', '>', '#', '!', '=':
			return true
		}
		if r < 0x20 || r == 0x7F {
			return true
		}
	}
	return false
}

// escapeControl replaces control characters with readable escapes.
func escapeControl(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == 0:
			b.WriteString(`\0`)
		case r < 0x20 || r == 0x7F:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
