// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package notifyutil sends desktop notifications when long-running
// scripts finish, via the cross-platform beeep library.
//
// Notifications are best-effort: headless environments and CI have no
// notification daemon, so the SCRIPT_NO_NOTIFY environment variable (or
// SetEnabled(false)) turns Send into a no-op that still echoes what
// would have been shown.
package notifyutil

import (
	"os"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/jongio/script-core/echo"
)

// EnvNoNotify disables desktop notifications when set to any value.
const EnvNoNotify = "SCRIPT_NO_NOTIFY"

var (
	mu      sync.RWMutex
	enabled *bool
)

// Enabled reports whether notifications are currently active.
// SCRIPT_NO_NOTIFY in the environment wins unless SetEnabled was called.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	if enabled != nil {
		return *enabled
	}
	_, noNotify := os.LookupEnv(EnvNoNotify)
	return !noNotify
}

// SetEnabled turns notifications on or off, overriding the environment.
func SetEnabled(value bool) {
	mu.Lock()
	enabled = &value
	mu.Unlock()
}

// ResetEnabled restores environment-driven behavior.
func ResetEnabled() {
	mu.Lock()
	enabled = nil
	mu.Unlock()
}

// Send shows a desktop notification, echoing it like any other script
// operation. Returns nil without touching the OS when notifications are
// disabled.
func Send(title, message string) error {
	echo.New().
		Styled("notify", echo.BrightBlack).
		Styled(echo.Quote(title), echo.Bold, echo.Cyan).
		Put(message).
		End()

	if !Enabled() {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// Beep plays the system alert sound. No-op when notifications are
// disabled.
func Beep() error {
	if !Enabled() {
		return nil
	}
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}
