// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package echo

// ANSI escape sequences for consistent styling across script-core output.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Underline = "\033[4m"

	// Foreground colors
	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	// Bright foreground colors
	BrightBlack   = "\033[90m"
	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
)

// style wraps text in the given ANSI sequences followed by a reset.
// Returns the text unchanged when color output is disabled.
func style(text string, styles ...string) string {
	if len(styles) == 0 || !colorEnabled() {
		return text
	}
	var prefix string
	for _, s := range styles {
		prefix += s
	}
	return prefix + text + Reset
}
