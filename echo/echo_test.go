// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package echo

import (
	"bytes"
	"strings"
	"testing"
)

func TestEchoWritesSingleLine(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	SetEnabled(true)
	defer ResetEnabled()

	e := New()
	e.Put("cmd").Put("ls").Put("-la")
	e.End()

	got := buf.String()
	if got != "cmd ls -la\n" {
		t.Errorf("End() wrote %q, want %q", got, "cmd ls -la\n")
	}
}

func TestEchoDisabled(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	SetEnabled(false)
	defer ResetEnabled()

	New().Put("should").Put("not").Put("appear").End()

	if buf.Len() != 0 {
		t.Errorf("disabled echo wrote %q, want nothing", buf.String())
	}
}

func TestEchoNoEchoEnvVar(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	ResetEnabled()
	t.Setenv(EnvNoEcho, "1")

	if Enabled() {
		t.Error("Enabled() = true with NO_ECHO set, want false")
	}

	New().Put("suppressed").End()
	if buf.Len() != 0 {
		t.Errorf("echo wrote %q with NO_ECHO set, want nothing", buf.String())
	}
}

func TestSetEnabledOverridesEnvVar(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	t.Setenv(EnvNoEcho, "1")
	SetEnabled(true)
	defer ResetEnabled()

	New().Put("visible").End()
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("echo wrote %q, want line containing %q", buf.String(), "visible")
	}
}

func TestStyledPlainWhenNotTerminal(t *testing.T) {
	// A bytes.Buffer is not a terminal, so styles must be dropped.
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	SetEnabled(true)
	defer ResetEnabled()

	New().Styled("ls", Bold, Cyan).End()

	got := buf.String()
	if strings.Contains(got, "\033[") {
		t.Errorf("Styled() emitted ANSI sequences to non-terminal: %q", got)
	}
	if got != "ls\n" {
		t.Errorf("Styled() wrote %q, want %q", got, "ls\n")
	}
}

func TestForceColor(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	SetEnabled(true)
	defer ResetEnabled()
	ForceColor()
	defer NoColor()

	New().Styled("ls", Bold, Cyan).End()

	got := buf.String()
	if !strings.Contains(got, Bold) || !strings.Contains(got, Cyan) || !strings.Contains(got, Reset) {
		t.Errorf("ForceColor() output missing ANSI sequences: %q", got)
	}
}

func TestEmptyLineWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	SetEnabled(true)
	defer ResetEnabled()

	New().End()
	if buf.Len() != 0 {
		t.Errorf("empty echo wrote %q, want nothing", buf.String())
	}
}
