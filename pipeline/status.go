// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pipeline

import (
	"fmt"
	"os"

	"github.com/jongio/script-core/procutil"
)

// Status records how one stage exited: by exit code or by signal.
type Status struct {
	// Code is the exit code. It is -1 when the stage was terminated by
	// a signal or when no code could be determined.
	Code int

	// Signal is the terminating signal number when Signaled is true.
	Signal int

	// Signaled reports whether the stage was terminated by a signal.
	Signaled bool
}

// Success reports whether the stage exited normally with code zero.
func (s Status) Success() bool {
	return !s.Signaled && s.Code == 0
}

// String returns "exit code N" or "signal N".
func (s Status) String() string {
	if s.Signaled {
		return fmt.Sprintf("signal %d", s.Signal)
	}
	return fmt.Sprintf("exit code %d", s.Code)
}

// newStatus derives a Status from a finished process state.
func newStatus(state *os.ProcessState) Status {
	if state == nil {
		return Status{Code: -1}
	}
	if sig, ok := procutil.ExitSignal(state); ok {
		return Status{Code: -1, Signal: sig, Signaled: true}
	}
	return Status{Code: state.ExitCode()}
}
