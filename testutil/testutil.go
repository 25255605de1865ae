// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides common testing helpers for script-core:
// capturing process stdout/stderr during a function call, temporary
// directories with automatic cleanup, and small assertion conveniences.
package testutil

import (
	"os"
	"strings"
	"testing"
)

// CaptureOutput captures os.Stdout while fn runs and returns what was
// written. Stdout is always restored, even when fn returns an error.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// CaptureStderr captures os.Stderr while fn runs and returns what was
// written. Useful for asserting on echoed commands, which go to stderr.
func CaptureStderr(t *testing.T, fn func() error) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

// capture swaps *target for a pipe while fn runs and drains the pipe
// concurrently, so fn can write more than a pipe buffer without
// blocking.
func capture(t *testing.T, target **os.File, fn func() error) string {
	t.Helper()

	orig := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	*target = w

	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("failed to close pipe writer: %v", err)
	}
	*target = orig

	output := <-outCh
	if fnErr != nil {
		t.Logf("captured function returned error: %v", fnErr)
	}
	return output
}

// TempDir creates a temporary directory removed automatically when the
// test completes.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "script-core-test-*")
	if err != nil {
		t.Fatalf("failed to create temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})
	return tmpDir
}

// Contains reports whether s contains substr.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
