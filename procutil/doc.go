// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package procutil provides cross-platform process utilities for script-core.
//
// It covers the process-boundary concerns the pipeline engine and task runner
// need: decoding exit statuses (exit code vs. terminating signal), checking
// whether a process is still alive, and tearing down a process tree.
//
// # Implementation
//
// Liveness checks and tree termination wrap github.com/shirou/gopsutil/v4/process,
// which uses platform-specific APIs:
//
//   - Windows: Native Windows API (OpenProcess, GetExitCodeProcess)
//   - Linux: /proc filesystem
//   - macOS/BSD: sysctl system calls
//
// This avoids the stale-PID issues that affect os.FindProcess + Signal(0)
// on Windows.
//
// Exit-signal decoding is implemented per-platform: on Unix it inspects the
// syscall.WaitStatus behind os.ProcessState; on Windows processes are never
// signal-terminated, so the decoder always reports no signal.
//
// # Example Usage
//
//	state := cmd.ProcessState
//	if sig, ok := procutil.ExitSignal(state); ok {
//	    fmt.Printf("terminated by signal %d\n", sig)
//	}
//
//	if procutil.IsProcessRunning(pid) {
//	    _ = procutil.TerminateTree(pid)
//	}
package procutil
