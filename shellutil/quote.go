// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import "strings"

// safeChars reports whether the argument consists only of characters that a
// POSIX shell treats literally, so it can be passed through unquoted.
func safeChars(arg string) bool {
	if arg == "" {
		return false
	}
	for _, r := range arg {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case strings.ContainsRune("-_./:@%+,", r):
		default:
			return false
		}
	}
	return true
}

// Quote escapes an argument so a POSIX shell parses it back to the original
// string. Safe arguments are returned bare; everything else is wrapped in
// single quotes, with embedded single quotes escaped.
//
// This is execution quoting for the shell-fallback path; display quoting
// for echoed commands lives in the echo package.
func Quote(arg string) string {
	if safeChars(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// JoinCommand renders a program and its arguments as a single shell-safe
// command line.
func JoinCommand(program string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, Quote(program))
	for _, arg := range args {
		parts = append(parts, Quote(arg))
	}
	return strings.Join(parts, " ")
}
