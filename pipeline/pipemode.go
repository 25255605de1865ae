// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pipeline

// PipeMode selects which of a stage's output streams feeds the next
// stage's stdin.
type PipeMode int

const (
	// ModeStdout pipes only stdout forward; stderr is inherited.
	ModeStdout PipeMode = iota

	// ModeStderr pipes only stderr forward; stdout is inherited.
	ModeStderr

	// ModeBoth merges stdout and stderr onto one pipe. Interleaving is
	// whatever the OS pipe delivers, not a strict temporal ordering.
	ModeBoth
)

// String returns the mode name for logs and error messages.
func (m PipeMode) String() string {
	switch m {
	case ModeStdout:
		return "stdout"
	case ModeStderr:
		return "stderr"
	case ModeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// symbol returns the pipe symbol used when echoing a chain.
func (m PipeMode) symbol() string {
	switch m {
	case ModeStderr:
		return "|&"
	case ModeBoth:
		return "|&&"
	default:
		return "|"
	}
}
