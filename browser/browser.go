// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package browser opens URLs in the system default browser, echoing the
// action like any other script operation.
package browser

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pkg/browser"

	"github.com/jongio/script-core/echo"
)

// EnvNoBrowser disables browser launching when set to any value, for
// headless environments and CI.
const EnvNoBrowser = "SCRIPT_NO_BROWSER"

var (
	mu      sync.RWMutex
	enabled *bool
)

func init() {
	// pkg/browser writes launcher noise to the process streams by
	// default; discard it so script output stays clean.
	browser.Stdout = nil
	browser.Stderr = nil
}

// Enabled reports whether browser launching is currently active.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	if enabled != nil {
		return *enabled
	}
	_, noBrowser := os.LookupEnv(EnvNoBrowser)
	return !noBrowser
}

// SetEnabled turns browser launching on or off, overriding the environment.
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

// Open launches the URL in the system default browser. Only http and
// https URLs are accepted. Returns nil without launching anything when
// browser opening is disabled.
func Open(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("open %s: only http and https URLs can be opened", url)
	}

	echo.New().
		Styled("web", echo.BrightBlack).
		Styled(url, echo.Underline, echo.BrightBlue).
		End()

	if !Enabled() {
		return nil
	}
	return browser.OpenURL(url)
}
