// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyProgram is returned when a stage has no program name.
	ErrEmptyProgram = errors.New("pipeline: empty program name")

	// ErrConsumed is returned when a command or pipeline that already
	// ran is run again. Each value executes at most once.
	ErrConsumed = errors.New("pipeline: already executed")
)

// LaunchError reports a stage that could not be spawned: program not
// found, permission denied, or an invalid working directory. Remaining
// stages are not spawned.
type LaunchError struct {
	// Stage is the zero-based index of the stage that failed to launch.
	Stage int

	// Program is the program name of the failed stage.
	Program string

	// Err is the underlying spawn error.
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("pipeline: stage %d (%s) failed to launch: %v", e.Stage, e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// StageExitError reports a pipeline whose stages all ran but at least
// one exited unsuccessfully. Stage is the lowest failing index; when
// the pipeline ran through the shell fallback the failing stage is not
// observable and Stage is -1.
type StageExitError struct {
	// Stage is the zero-based index of the first failing stage, or -1.
	Stage int

	// Status is the failing stage's exit status.
	Status Status

	// Statuses holds every stage's exit status for diagnostics.
	Statuses []Status
}

func (e *StageExitError) Error() string {
	if e.Stage < 0 {
		return fmt.Sprintf("pipeline: failed with %s", e.Status)
	}
	return fmt.Sprintf("pipeline: stage %d failed with %s", e.Stage, e.Status)
}

// PipeIOError reports a failure forwarding literal input or draining
// captured output. A broken pipe on the input path is not an error;
// a downstream stage may legitimately stop reading early.
type PipeIOError struct {
	// Role identifies the failing task: "pipe" (allocation), "input",
	// or "capture".
	Role string

	// Err is the underlying I/O error.
	Err error
}

func (e *PipeIOError) Error() string {
	return fmt.Sprintf("pipeline: %s: %v", e.Role, e.Err)
}

func (e *PipeIOError) Unwrap() error {
	return e.Err
}

// DecodeError reports captured output that is not valid UTF-8 when text
// output was requested. OutputBytes remains available for raw access.
type DecodeError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pipeline: output is not valid UTF-8 at byte %d", e.Offset)
}
