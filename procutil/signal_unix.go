// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

//go:build !windows
// +build !windows

package procutil

import (
	"os"
	"syscall"
)

// ExitSignal reports the signal that terminated the process described by
// state, if any. The boolean is false when the process exited normally or
// when the platform does not expose a wait status.
func ExitSignal(state *os.ProcessState) (int, bool) {
	if state == nil {
		return 0, false
	}

	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}

	return int(ws.Signal()), true
}
