// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package echo

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Environment variable names recognized by the echo sink.
const (
	// EnvNoEcho disables all echo output when set to any value.
	EnvNoEcho = "NO_ECHO"

	// EnvNoColor disables color output when set to any value.
	// See https://no-color.org for the convention.
	EnvNoColor = "NO_COLOR"
)

var (
	// mu protects the global sink state below.
	mu sync.RWMutex

	// output is where echo lines are written. Defaults to stderr so that
	// echoed commands never mix with captured pipeline stdout.
	output io.Writer = os.Stderr

	// enabled overrides echoing programmatically; nil means "consult the
	// NO_ECHO environment variable".
	enabled *bool

	// forcedColor overrides color detection; nil means auto-detect.
	forcedColor *bool
)

// Enabled reports whether echo output is currently active.
// NO_ECHO in the environment wins unless SetEnabled was called.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	if enabled != nil {
		return *enabled
	}
	_, noEcho := os.LookupEnv(EnvNoEcho)
	return !noEcho
}

// SetEnabled turns echo output on or off, overriding the NO_ECHO
// environment variable. Safe for concurrent use.
func SetEnabled(value bool) {
	mu.Lock()
	enabled = &value
	mu.Unlock()
}

// ResetEnabled restores environment-driven echo behavior.
func ResetEnabled() {
	mu.Lock()
	enabled = nil
	mu.Unlock()
}

// SetOutput redirects echo output, primarily for tests.
// Returns the previous writer so it can be restored.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	value := true
	mu.Lock()
	forcedColor = &value
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	value := false
	mu.Lock()
	forcedColor = &value
	mu.Unlock()
}

// colorEnabled reports whether styled output should carry ANSI sequences.
func colorEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	if forcedColor != nil {
		return *forcedColor
	}
	if _, noColor := os.LookupEnv(EnvNoColor); noColor {
		return false
	}
	if f, ok := output.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Echo accumulates space-separated, optionally styled words and emits
// them as a single line. The zero value is not usable; call New.
type Echo struct {
	parts   []string
	skipped bool
}

// New creates an empty echo line. When echoing is disabled the returned
// value silently discards everything, so callers never need to branch.
func New() *Echo {
	return &Echo{skipped: !Enabled()}
}

// Put appends a bare word to the line.
func (e *Echo) Put(text string) *Echo {
	if e.skipped {
		return e
	}
	e.parts = append(e.parts, text)
	return e
}

// Putf appends a formatted bare word to the line.
func (e *Echo) Putf(format string, args ...any) *Echo {
	return e.Put(fmt.Sprintf(format, args...))
}

// Styled appends a word wrapped in the given ANSI styles.
func (e *Echo) Styled(text string, styles ...string) *Echo {
	if e.skipped {
		return e
	}
	e.parts = append(e.parts, style(text, styles...))
	return e
}

// End writes the accumulated line followed by a newline. A line with no
// words (or a disabled sink) writes nothing.
func (e *Echo) End() {
	if e.skipped || len(e.parts) == 0 {
		return
	}
	mu.RLock()
	w := output
	mu.RUnlock()
	fmt.Fprintln(w, strings.Join(e.parts, " "))
}
