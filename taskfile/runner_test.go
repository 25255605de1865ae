// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package taskfile

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX shell tools")
	}
}

func TestRunnerProgramStep(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	tf := &Taskfile{Tasks: map[string]*Task{
		"touch": {
			Dir: dir,
			Steps: []Step{
				{Program: "touch", Args: []string{"made-by-task"}},
			},
		},
	}}

	if err := NewRunner(tf).Run(context.Background(), "touch"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "made-by-task")); err != nil {
		t.Errorf("expected file not created: %v", err)
	}
}

func TestRunnerShellStep(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	tf := &Taskfile{Tasks: map[string]*Task{
		"redirect": {
			Dir: dir,
			Steps: []Step{
				{Run: "echo piped | tr a-z A-Z > out.txt"},
			},
		},
	}}

	if err := NewRunner(tf).Run(context.Background(), "redirect"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "PIPED\n" {
		t.Errorf("out.txt = %q, want %q", got, "PIPED\n")
	}
}

func TestRunnerScriptStep(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	script := filepath.Join(dir, "emit.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho ran > \"$(dirname \"$0\")/script-out\"\n"), 0o700); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tf := &Taskfile{Tasks: map[string]*Task{
		"script": {
			Steps: []Step{{Script: script}},
		},
	}}

	if err := NewRunner(tf).Run(context.Background(), "script"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "script-out")); err != nil {
		t.Errorf("script did not run: %v", err)
	}
}

func TestRunnerEnvMerging(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	tf := &Taskfile{
		Env: map[string]string{"SHARED": "global", "ONLY_GLOBAL": "g"},
		Tasks: map[string]*Task{
			"env": {
				Dir: dir,
				Env: map[string]string{"SHARED": "task"},
				Steps: []Step{
					{Run: `echo "$SHARED $ONLY_GLOBAL" > env.txt`},
				},
			},
		},
	}

	if err := NewRunner(tf).Run(context.Background(), "env"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "env.txt"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "task g\n" {
		t.Errorf("env.txt = %q, want task-level override with global fallback", got)
	}
}

func TestRunnerStepInput(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	tf := &Taskfile{Tasks: map[string]*Task{
		"input": {
			Dir: dir,
			Steps: []Step{
				{Run: "cat > received.txt", Input: "fed via stdin"},
			},
		},
	}}

	if err := NewRunner(tf).Run(context.Background(), "input"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, _ := os.ReadFile(filepath.Join(dir, "received.txt"))
	if string(got) != "fed via stdin" {
		t.Errorf("received.txt = %q, want step input", got)
	}
}

func TestRunnerStopsOnFailure(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	tf := &Taskfile{Tasks: map[string]*Task{
		"failing": {
			Dir: dir,
			Steps: []Step{
				{Run: "exit 2"},
				{Run: "touch should-not-exist"},
			},
		},
	}}

	err := NewRunner(tf).Run(context.Background(), "failing")
	if err == nil {
		t.Fatal("Run() error = nil, want step failure")
	}
	if !strings.Contains(err.Error(), "step 0") {
		t.Errorf("Run() error = %v, want failing step named", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "should-not-exist")); !os.IsNotExist(statErr) {
		t.Error("later step ran after failure")
	}
}

func TestRunnerContinueOnError(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	tf := &Taskfile{Tasks: map[string]*Task{
		"resilient": {
			Dir:             dir,
			ContinueOnError: true,
			Steps: []Step{
				{Run: "exit 2"},
				{Run: "touch survived"},
			},
		},
	}}

	err := NewRunner(tf).Run(context.Background(), "resilient")
	if err == nil {
		t.Fatal("Run() error = nil, want collected failure")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "survived")); statErr != nil {
		t.Error("later step did not run despite continueOnError")
	}
}

func TestRunnerRetriesUntilSuccess(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	// Fails until the marker file accumulates two attempts.
	script := `
marker="$(dirname "$0")/attempts"
echo x >> "$marker"
test "$(wc -l < "$marker")" -ge 2
`
	path := filepath.Join(dir, "flaky.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o700); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tf := &Taskfile{Tasks: map[string]*Task{
		"flaky": {
			Retries:    3,
			RetryDelay: Duration(1_000_000), // 1ms, keep the test fast
			Steps:      []Step{{Script: path}},
		},
	}}

	if err := NewRunner(tf).Run(context.Background(), "flaky"); err != nil {
		t.Fatalf("Run() error = %v, want retry to succeed", err)
	}

	attempts, err := os.ReadFile(filepath.Join(dir, "attempts"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := strings.Count(string(attempts), "\n"); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestRunnerUnknownTask(t *testing.T) {
	tf := &Taskfile{Tasks: map[string]*Task{"known": {Steps: []Step{{Run: "true"}}}}}

	err := NewRunner(tf).Run(context.Background(), "missing")
	if err == nil || !strings.Contains(err.Error(), `unknown task "missing"`) {
		t.Errorf("Run() error = %v, want unknown task", err)
	}
}
