// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

//go:build windows
// +build windows

package procutil

import "os"

// ExitSignal reports the signal that terminated the process described by
// state. Windows processes are never signal-terminated, so this always
// reports no signal; abnormal termination surfaces through the exit code.
func ExitSignal(state *os.ProcessState) (int, bool) {
	return 0, false
}
