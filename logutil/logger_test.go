// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestComponentLogger(t *testing.T) {
	SetupLogger(false, true)
	defer SetupLogger(false, false)

	var buf bytes.Buffer
	SetOutput(&buf)

	log := NewLogger("pipeline")
	log.Info("executing")

	got := buf.String()
	if !strings.Contains(got, `"component":"pipeline"`) {
		t.Errorf("Info() output = %q, want component attribute", got)
	}
}

func TestComponentLoggerWithStage(t *testing.T) {
	SetupLogger(false, true)
	defer SetupLogger(false, false)

	var buf bytes.Buffer
	SetOutput(&buf)

	NewLogger("pipeline").WithStage(1).Info("stage exited")

	got := buf.String()
	if !strings.Contains(got, `"stage":1`) {
		t.Errorf("Info() output = %q, want stage attribute", got)
	}
}

func TestComponentLoggerWithTask(t *testing.T) {
	SetupLogger(false, true)
	defer SetupLogger(false, false)

	var buf bytes.Buffer
	SetOutput(&buf)

	log := NewLogger("taskfile").WithTask("build")
	log.Info("task started")

	got := buf.String()
	if !strings.Contains(got, `"task":"build"`) {
		t.Errorf("Info() output = %q, want task attribute", got)
	}
	if log.Component() != "taskfile" {
		t.Errorf("Component() = %q, want %q", log.Component(), "taskfile")
	}
}

func TestComponentLoggerWithFields(t *testing.T) {
	SetupLogger(false, true)
	defer SetupLogger(false, false)

	var buf bytes.Buffer
	SetOutput(&buf)

	NewLogger("pipeline").WithFields("program", "cat", "index", 0).Info("spawned")

	got := buf.String()
	if !strings.Contains(got, `"program":"cat"`) {
		t.Errorf("Info() output = %q, want program attribute", got)
	}
}
