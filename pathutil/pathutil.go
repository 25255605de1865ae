// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pathutil manages the PATH of the current process, so scripts
// can locate tools and make locally installed binaries visible to the
// commands they spawn.
package pathutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jongio/script-core/echo"
)

func echoOp(op, dir string) {
	echo.New().
		Styled("path", echo.BrightBlack).
		Put(op).
		Styled(echo.Quote(dir), echo.Underline, echo.BrightBlue).
		End()
}

// Which returns the full path of a tool on PATH, or "" when absent.
// On Windows the .exe suffix is implied.
func Which(tool string) string {
	name := tool
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(tool), ".exe") {
		name += ".exe"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}

// Has reports whether a tool is resolvable on PATH.
func Has(tool string) bool {
	return Which(tool) != ""
}

// Dirs returns the PATH entries in search order, empties removed.
func Dirs() []string {
	var dirs []string
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Contains reports whether dir is already a PATH entry.
func Contains(dir string) bool {
	cleaned := filepath.Clean(dir)
	for _, entry := range Dirs() {
		if filepath.Clean(entry) == cleaned {
			return true
		}
	}
	return false
}

// Prepend puts dir at the front of this process's PATH so its binaries
// win over existing ones. Already-present entries are left alone.
func Prepend(dir string) error {
	if Contains(dir) {
		return nil
	}
	echoOp("prepend", dir)
	return os.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// Append adds dir to the end of this process's PATH. Already-present
// entries are left alone.
func Append(dir string) error {
	if Contains(dir) {
		return nil
	}
	echoOp("append", dir)
	return os.Setenv("PATH", os.Getenv("PATH")+string(os.PathListSeparator)+dir)
}
