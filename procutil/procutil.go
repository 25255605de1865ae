// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/process"
)

// IsProcessRunning checks if a process with the given PID is running.
// Works cross-platform (Windows and Unix).
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	running, err := process.PidExists(int32(pid))
	if err != nil {
		return false
	}

	return running
}

// TerminateTree terminates the process with the given PID and all of its
// descendants, children first so that orphaned grandchildren are not left
// behind. Each process receives SIGTERM (a graceful close request on
// Windows); processes that already exited are skipped.
//
// Returns an error only if the root process exists but could not be
// terminated.
func TerminateTree(pid int) error {
	if pid <= 0 {
		return fmt.Errorf("invalid pid: %d", pid)
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		// Process already gone, nothing to do.
		return nil
	}

	children, err := proc.Children()
	if err == nil {
		for _, child := range children {
			_ = TerminateTree(int(child.Pid))
		}
	}

	if err := proc.Terminate(); err != nil {
		if running, _ := process.PidExists(int32(pid)); !running {
			return nil
		}
		return fmt.Errorf("failed to terminate process %d: %w", pid, err)
	}

	return nil
}

// KillTree is like TerminateTree but sends an uncatchable kill to every
// process in the tree. Use it only after a graceful TerminateTree has
// been given a chance to work.
func KillTree(pid int) error {
	if pid <= 0 {
		return fmt.Errorf("invalid pid: %d", pid)
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return nil
	}

	children, err := proc.Children()
	if err == nil {
		for _, child := range children {
			_ = KillTree(int(child.Pid))
		}
	}

	if err := proc.Kill(); err != nil {
		if running, _ := process.PidExists(int32(pid)); !running {
			return nil
		}
		return fmt.Errorf("failed to kill process %d: %w", pid, err)
	}

	return nil
}
